// Package cipherpost provides the Go client SDK for CipherPost, an
// end-to-end encrypted email service.
//
// The SDK provisions email addresses, stores and retrieves messages and
// drafts, and manages folders and blocklists. Message bodies and selected
// metadata fields (aliases, custom folder names, blocked addresses) are
// kept confidential end-to-end: they are sealed client-side before they
// reach the service and unsealed client-side after retrieval.
//
// Basic usage:
//
//	client, err := cipherpost.New("your-api-key",
//	    cipherpost.WithMasterKey(masterSecret),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	addr, err := client.ProvisionEmailAddress(ctx, "alice@cipherpost.com",
//	    cipherpost.WithAlias("Alice"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id, err := client.SendMessage(ctx, addr.ID, cipherpost.SendMessageInput{
//	    From: addr.Address,
//	    To:   []string{"bob@cipherpost.com"},
//	    Body: rfc822,
//	})
//
// Messages between CipherPost addresses are encrypted once per message
// with a fresh symmetric key, which is then wrapped for every recipient's
// public key, so any recipient can decrypt independently.
package cipherpost
