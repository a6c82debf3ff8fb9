// convert_xpub.go prints every SLIP-132 encoding of an extended key.
// Usage: go run scripts/convert_xpub.go <extended key>
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/seedctl/internal/wallet"
)

var public = []struct {
	name    string
	version wallet.Version
}{
	{"xpub", wallet.VersionXpub},
	{"ypub", wallet.VersionYpub},
	{"zpub", wallet.VersionZpub},
	{"tpub", wallet.VersionTpub},
	{"upub", wallet.VersionUpub},
	{"vpub", wallet.VersionVpub},
}

var private = []struct {
	name    string
	version wallet.Version
}{
	{"xprv", wallet.VersionXprv},
	{"yprv", wallet.VersionYprv},
	{"zprv", wallet.VersionZprv},
	{"tprv", wallet.VersionTprv},
	{"uprv", wallet.VersionUprv},
	{"vprv", wallet.VersionVprv},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: convert_xpub <extended key>")
		os.Exit(1)
	}
	key := strings.TrimSpace(os.Args[1])
	version, payload, err := wallet.DecodeExtendedKey(key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Byte 45 is 0x00 for private keys, 0x02/0x03 for public keys.
	table := public
	if payload[45] == 0 {
		table = private
	}
	fmt.Printf("version=%s\n", version)
	for _, v := range table {
		out, err := wallet.Reencode(payload, v.version)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%s=%s\n", v.name, out)
	}
}
