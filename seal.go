package cipherpost

import (
	"github.com/cipherpost/client-go/internal/api"
	"github.com/cipherpost/client-go/internal/secure"
)

// sealedValueToWire converts a sealed value to its transport form.
func sealedValueToWire(v secure.SealedValue) *api.SealedValue {
	return &api.SealedValue{
		KeyID:         v.KeyID,
		Algorithm:     string(v.Algorithm),
		PlainTextType: string(v.PlainTextType),
		Base64Data:    v.Base64Data,
	}
}

// sealedValueFromWire converts a transport sealed value back to the core
// form. Nil maps to nil: an absent sealed field stays absent.
func sealedValueFromWire(v *api.SealedValue) *secure.SealedValue {
	if v == nil {
		return nil
	}
	return &secure.SealedValue{
		KeyID:         v.KeyID,
		Algorithm:     secure.Algorithm(v.Algorithm),
		PlainTextType: secure.PlainTextType(v.PlainTextType),
		Base64Data:    v.Base64Data,
	}
}

// sealedFolderFromWire builds the core sealed record for a folder.
func sealedFolderFromWire(f *api.EmailFolder) secure.SealedFolder {
	return secure.SealedFolder{
		ID:             f.ID,
		EmailAddressID: f.EmailAddressID,
		FolderType:     f.FolderType,
		MessageCount:   f.MessageCount,
		UnseenCount:    f.UnseenCount,
		SealedName:     sealedValueFromWire(f.SealedName),
	}
}

// sealedAddressFromWire builds the core sealed record for an address,
// including its folder children in wire order.
func sealedAddressFromWire(a *api.EmailAddress) secure.SealedEmailAddress {
	folders := make([]secure.SealedFolder, 0, len(a.Folders))
	for i := range a.Folders {
		folders = append(folders, sealedFolderFromWire(&a.Folders[i]))
	}
	return secure.SealedEmailAddress{
		ID:          a.ID,
		Address:     a.Address,
		CreatedAt:   a.CreatedAt,
		SealedAlias: sealedValueFromWire(a.SealedAlias),
		Folders:     folders,
	}
}
