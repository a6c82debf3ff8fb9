package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Klingon-tech/seedctl/config"
	"github.com/Klingon-tech/seedctl/internal/entropy"
	"github.com/Klingon-tech/seedctl/internal/generator"
	"github.com/Klingon-tech/seedctl/internal/wallet"
	"github.com/fatih/color"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	arrow  = color.New(color.FgCyan, color.Bold).SprintFunc()
	good   = color.New(color.FgGreen).SprintFunc()
	warn   = color.New(color.FgYellow).SprintFunc()
	alert  = color.New(color.FgRed, color.Bold).SprintFunc()
	orange = color.New(color.FgHiYellow, color.Bold).SprintFunc()
	header = color.New(color.FgBlue, color.Bold).SprintFunc()
	word   = color.New(color.FgYellow, color.Bold).SprintFunc()
)

const banner = `
   ___             _  ___ _____ _
  / __| ___ ___ __| |/ __|_   _| |
  \__ \/ -_) -_) _` + "`" + ` | (__  | | | |__
  |___/\___\___\__,_|\___| |_| |____|`

func printBanner(w io.Writer, showDoc bool) {
	fmt.Fprintf(w, "%s %s\n%s\n", orange(banner), good("version: "+config.Version), bold(config.Description))
	if showDoc {
		fmt.Fprintf(w, "%s%s\n\n", warn("Documentation: "), arrow(config.Repository+"/README.md"))
	}
}

func printAbout(w io.Writer) {
	printBanner(w, false)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Version: %s\n", config.Version)
	fmt.Fprintf(w, "Commit: %s\n", config.Commit)
	fmt.Fprintf(w, "Date: %s\n", config.Date)
	fmt.Fprintf(w, "Maintainer: %s\n", config.Maintainer)
	fmt.Fprintf(w, "Repository (canonical): %s\n", config.Repository)
	fmt.Fprintf(w, "Documentation: %s/README.md\n", config.Repository)
}

var securityCard = []string{
	"! DO NOT save your seed in online digital files.",
	"",
	"! If you used a passphrase, memorize it.",
	"  Without it, you will lose access to your wallet.",
	"",
	"! As soon as you generate your seed, write it down",
	"  TEMPORARILY on a piece of paper and then use a",
	"  Cold Wallet or Steel Wallet.",
	"",
	"! Finally, exit the program.",
}

func printSecurityCard(w io.Writer) {
	const width = 60
	line := strings.Repeat("━", width)
	fmt.Fprintf(w, "\n%s\n", alert("┏"+line+"┓"))
	title := " IMPORTANT! "
	pad := width - len(title)
	fmt.Fprintf(w, "┃%s%s%s┃\n", strings.Repeat(" ", pad/2), alert(title), strings.Repeat(" ", pad-pad/2))
	fmt.Fprintf(w, "%s\n", alert("┣"+line+"┫"))
	for _, l := range securityCard {
		fmt.Fprintf(w, "┃ %-*s┃\n", width-1, l)
	}
	fmt.Fprintf(w, "%s\n\n", alert("┗"+line+"┛"))
}

func printFooter(w io.Writer) {
	line := strings.Repeat("-", 50)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", line, bold(fmt.Sprintf("%s © %s and collaborators.", config.Name, config.Maintainer)), line)
}

func modeLabel(m entropy.Mode) string {
	if m == entropy.Hybrid {
		return "HYBRID (dice + system RNG)"
	}
	return "DETERMINISTIC (dice only)"
}

func addressLabel(s wallet.ScriptType) string {
	switch s {
	case wallet.BIP44:
		return "Address BIP44 (Legacy)"
	case wallet.BIP49:
		return "Address BIP49 (Nested SegWit)"
	default:
		return "Address BIP84 (Native SegWit)"
	}
}

// printResult renders the generated wallet.
func printResult(w io.Writer, res *generator.Result) {
	if res.Dice != "" {
		fmt.Fprintf(w, "%s %s\n", bold("Entropy mode:"), modeLabel(res.Mode))
	}
	fmt.Fprintf(w, "%s %s\n", bold("Mnemonic checksum:"), good("valid (BIP39)"))

	fmt.Fprintf(w, "\n\n%s\n\n", header("Your wallet: "+strings.Repeat("-", 46)))
	fmt.Fprintf(w, "%s\n\n", bold("POSITION  INDEXES  SEED"))
	for i, wd := range res.Words {
		fmt.Fprintf(w, "%02d.  %04d  %s\n", i+1, res.Indices[i]+1, word(wd))
	}

	fmt.Fprintf(w, "\n%s %s\n", bold("Derivation path:"), res.Path)
	fmt.Fprintf(w, "\n%s %s\n", bold("Master fingerprint:"), res.Fingerprint)

	if res.AccountPrivate != "" {
		fmt.Fprintf(w, "\n%s %s\n", bold("Account Private Key:"), res.AccountPrivate)
	}
	fmt.Fprintf(w, "\n%s %s\n", bold("Account Public Key:"), res.AccountPublic)

	fmt.Fprintf(w, "\n%s\n%s\n", bold("Output Descriptor (receive):"), res.Descriptors.Receive)
	fmt.Fprintf(w, "\n%s\n%s\n", bold("Output Descriptor (change):"), res.Descriptors.Change)

	fmt.Fprintf(w, "\n%s\n", bold(addressLabel(res.Script)))
	for _, a := range res.Addresses {
		fmt.Fprintf(w, "%s → %s\n", a.Path, a.Address)
	}
}
