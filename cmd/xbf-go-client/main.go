// Copyright (c) 2026 Neomantra Corp

// xbf-go-client demonstrates xbf-go-server's metadata-cache protocol:
// the first request (code 0) fetches metadata and a value; a second
// request against the same server (code 1) reuses the cached metadata
// and fetches only the value.

package main

import (
	"bufio"
	"fmt"
	"net"
	"os"

	"github.com/nimblemarkets/xbf-go"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/pflag"
)

const (
	requestFull      = 0
	requestValueOnly = 1
)

func main() {
	var addr string
	var showHelp bool

	pflag.StringVarP(&addr, "connect", "c", "127.0.0.1:6969", "host:port to connect to")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.Parse()

	if showHelp {
		fmt.Fprintf(os.Stdout, "usage: %s [opts]\n\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(0)
	}

	metadata, value, err := fetch(addr, requestFull, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "first request failed: %s\n", err.Error())
		os.Exit(1)
	}
	printRider(value, "first request (metadata + value)")

	_, value2, err := fetch(addr, requestValueOnly, metadata)
	if err != nil {
		fmt.Fprintf(os.Stderr, "second request failed: %s\n", err.Error())
		os.Exit(1)
	}
	printRider(value2, "second request (cached metadata, value only)")
}

// fetch sends requestCode to addr and reads back a value. When
// knownMetadata is nil, it also reads a leading metadata blob;
// otherwise it deserializes the value directly against knownMetadata.
func fetch(addr string, requestCode byte, knownMetadata xbf.Metadata) (xbf.Metadata, xbf.Value, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	writer := bufio.NewWriter(conn)
	if _, err := writer.Write([]byte{requestCode}); err != nil {
		return nil, nil, err
	}
	if err := writer.Flush(); err != nil {
		return nil, nil, err
	}

	reader := bufio.NewReader(conn)

	metadata := knownMetadata
	if metadata == nil {
		metadata, err = xbf.DeserializeMetadata(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read metadata: %w", err)
		}
	}

	value, err := xbf.DeserializeValue(metadata, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read value: %w", err)
	}
	return metadata, value, nil
}

// printRider finds and prints the rider named "Galbatorix" in a
// decoded vector of DragonRider structs, mirroring the original
// example client's find_galbatorix helper.
func printRider(value xbf.Value, label string) {
	vec, ok := value.(*xbf.Vector)
	if !ok {
		fmt.Printf("%s: not a vector\n", label)
		return
	}
	for _, el := range vec.Elements() {
		s, ok := el.(*xbf.Struct)
		if !ok {
			continue
		}
		name, ok := s.Get("name")
		if !ok {
			continue
		}
		if nameStr, ok := name.(xbf.String); ok && string(nameStr) == "Galbatorix" {
			j, err := xbf.ValueToJSON(s)
			if err != nil {
				fmt.Printf("%s: %+v\n", label, s)
				return
			}
			b, _ := json.Marshal(j)
			fmt.Printf("%s: %s\n", label, string(b))
			return
		}
	}
	fmt.Printf("%s: Galbatorix not found\n", label)
}
