package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Klingon-tech/seedctl/internal/export"
	"github.com/Klingon-tech/seedctl/pkg/crypto"
)

// checkExport opens an export file, asking for the password when it is
// sealed, verifies it and prints a summary without the private key.
func checkExport(path string, u *ui, out io.Writer) error {
	rec, err := export.ReadFile(path, nil)
	if errors.Is(err, export.ErrEmptyPassword) {
		password, perr := u.readSecret("Export password: ")
		if perr != nil {
			return perr
		}
		defer crypto.Zero(password)
		rec, err = export.ReadFile(path, password)
	}
	if err != nil {
		return err
	}
	if err := rec.Verify(); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n", bold("Export:"), path)
	fmt.Fprintf(out, "%s %s %s\n", bold("Created by:"), rec.Software.Name, rec.Software.Version)
	fmt.Fprintf(out, "%s %s / %s\n", bold("Network / script:"), rec.Network, rec.ScriptType)
	fmt.Fprintf(out, "%s [%s] %s\n", bold("Key origin:"), rec.KeyOrigin.Fingerprint, rec.KeyOrigin.DerivationPath)
	fmt.Fprintf(out, "%s %t\n", bold("Watch-only:"), rec.WatchOnly)
	fmt.Fprintf(out, "%s %s\n", bold("Account Public Key:"), rec.Keys.AccountXpub)
	fmt.Fprintf(out, "\n%s\n%s\n", bold("Output Descriptor (receive):"), rec.Descriptors.Receive)
	fmt.Fprintf(out, "\n%s\n%s\n", bold("Output Descriptor (change):"), rec.Descriptors.Change)
	fmt.Fprintf(out, "\n%s\n", good("Export is consistent."))
	return nil
}
