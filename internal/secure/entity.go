package secure

import "time"

// Folder is the plaintext form of a sealed folder record.
type Folder struct {
	ID             string
	EmailAddressID string
	FolderType     string
	MessageCount   int
	UnseenCount    int
	// Name is the custom display name. Nil when the stored record had no
	// sealed name; standard folders carry only a FolderType.
	Name *string
}

// SealedFolder is a folder record as stored by the service: non-sealed
// fields in the clear plus an optional sealed display name.
type SealedFolder struct {
	ID             string
	EmailAddressID string
	FolderType     string
	MessageCount   int
	UnseenCount    int
	SealedName     *SealedValue
}

// Unseal converts the record to its plaintext counterpart. Non-sealed
// fields copy through; an absent sealed name stays absent.
func (f SealedFolder) Unseal(u *Unsealer) (Folder, error) {
	out := Folder{
		ID:             f.ID,
		EmailAddressID: f.EmailAddressID,
		FolderType:     f.FolderType,
		MessageCount:   f.MessageCount,
		UnseenCount:    f.UnseenCount,
	}
	if f.SealedName != nil {
		name, err := u.Unseal(*f.SealedName)
		if err != nil {
			return Folder{}, err
		}
		out.Name = &name
	}
	return out, nil
}

// EmailAddress is the plaintext form of a sealed address record.
type EmailAddress struct {
	ID        string
	Address   string
	CreatedAt time.Time
	// Alias is the user-chosen display alias. Nil when the stored record
	// had no sealed alias.
	Alias   *string
	Folders []Folder
}

// SealedEmailAddress is an address record as stored by the service. It
// owns its folders; unsealing recurses into them in order.
type SealedEmailAddress struct {
	ID          string
	Address     string
	CreatedAt   time.Time
	SealedAlias *SealedValue
	Folders     []SealedFolder
}

// Unseal converts the record and all of its folders to their plaintext
// counterparts. Failure in any field or child aborts the whole
// conversion; partial-record handling belongs to the caller.
func (a SealedEmailAddress) Unseal(u *Unsealer) (EmailAddress, error) {
	out := EmailAddress{
		ID:        a.ID,
		Address:   a.Address,
		CreatedAt: a.CreatedAt,
	}
	if a.SealedAlias != nil {
		alias, err := u.Unseal(*a.SealedAlias)
		if err != nil {
			return EmailAddress{}, err
		}
		out.Alias = &alias
	}

	folders, err := UnsealAll[Folder, SealedFolder](u, a.Folders)
	if err != nil {
		return EmailAddress{}, err
	}
	out.Folders = folders

	return out, nil
}

// UnsealAll unseals a list of sealed records, preserving input order. Any
// failure aborts the whole conversion.
func UnsealAll[P any, S interface {
	Unseal(*Unsealer) (P, error)
}](u *Unsealer, records []S) ([]P, error) {
	if len(records) == 0 {
		return nil, nil
	}
	out := make([]P, 0, len(records))
	for _, r := range records {
		p, err := r.Unseal(u)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
