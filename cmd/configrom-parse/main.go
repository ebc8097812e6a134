// Command configrom-parse prints the directory tree of an IEEE 1212
// configuration ROM image.
//
// The image is raw big-endian bytes as read from the node's configuration
// ROM address space, for example via /sys/bus/firewire/devices/*/config_rom.
//
// Usage:
//
//	configrom-parse <file>
//
// Pass "-" to read the image from standard input. Unit directories that
// declare the AV/C unit architecture are flagged in the output.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/firewire-audio/avc-go/pkg/configrom"
)

const usage = `configrom-parse - IEEE 1212 configuration ROM viewer

Usage:
  configrom-parse <file>

Reads a raw big-endian ROM image (or standard input when the file is "-")
and prints the bus information block and the directory tree.
`

const indentPerLevel = 2

func main() {
	fs := flag.NewFlagSet("configrom-parse", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	raw, err := readImage(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "configrom-parse: %v\n", err)
		os.Exit(1)
	}
	if len(raw)%4 != 0 {
		fmt.Fprintf(os.Stderr, "configrom-parse: image length %d is not quadlet aligned\n", len(raw))
		os.Exit(1)
	}

	rom, err := configrom.Parse(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configrom-parse: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Bus information block:")
	printRaw(rom.BusInfo, 1)
	fmt.Println("Root directory block:")
	printDirectory(rom.Root, 1)
}

func readImage(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printRaw(raw []byte, level int) {
	indent := strings.Repeat(" ", level*indentPerLevel)
	for pos := 0; pos < len(raw); pos += 16 {
		end := pos + 16
		if end > len(raw) {
			end = len(raw)
		}
		fmt.Printf("%s%s\n", indent, hexLine(raw[pos:end]))
	}
}

func hexLine(raw []byte) string {
	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}

func printDirectory(dir configrom.Directory, level int) {
	indent := strings.Repeat(" ", level*indentPerLevel)

	for _, entry := range dir {
		switch data := entry.Data.(type) {
		case configrom.Immediate:
			fmt.Printf("%s%s (immediate): 0x%06x\n", indent, entry.Key, uint32(data))
		case configrom.CsrOffset:
			fmt.Printf("%s%s (offset): 0x%012x\n", indent, entry.Key, uint64(data))
		case configrom.Leaf:
			fmt.Printf("%s%s (leaf):\n", indent, entry.Key)
			printLeaf(entry.Key, data, level+1)
		case configrom.Directory:
			label := ""
			if entry.Key == configrom.KeyUnit && isAvcUnit(data) {
				label = " [AV/C unit]"
			}
			fmt.Printf("%s%s (directory):%s\n", indent, entry.Key, label)
			printDirectory(data, level+1)
		}
	}
}

func printLeaf(key configrom.KeyType, leaf configrom.Leaf, level int) {
	indent := strings.Repeat(" ", level*indentPerLevel)

	if key == configrom.KeyEui64 {
		if eui, err := configrom.DecodeEUI64(leaf); err == nil {
			fmt.Printf("%sEUI-64: 0x%016x\n", indent, eui)
			return
		}
	}

	td, err := configrom.DecodeTextualDescriptor(leaf)
	if err != nil {
		printRaw(leaf, level)
		return
	}
	fmt.Printf("%sTextual descriptor:\n", indent)
	fmt.Printf("%s  specifier_id: 0x%06x\n", indent, td.SpecifierID)
	fmt.Printf("%s  width: %d\n", indent, td.Width)
	fmt.Printf("%s  character_set: %d\n", indent, td.CharacterSet)
	fmt.Printf("%s  language: %d\n", indent, td.Language)
	fmt.Printf("%s  text: %s\n", indent, td.Text)
}

func isAvcUnit(unit configrom.Directory) bool {
	specifier, err := unit.Immediate(configrom.KeySpecifierID)
	if err != nil || specifier != configrom.AvcUnitSpecifierID {
		return false
	}
	version, err := unit.Immediate(configrom.KeyVersion)
	return err == nil && version == configrom.AvcUnitVersion
}
