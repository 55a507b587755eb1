// Copyright (c) 2026 Neomantra Corp

// xbf-go-server is a minimal demonstration of the metadata-cache wire
// pattern: a client's first request (code 0) gets metadata and a value;
// any other request code, recognized or not, gets only the value.

package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/nimblemarkets/xbf-go"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	_ "go.uber.org/automaxprocs"
)

const (
	requestFull      = 0
	requestValueOnly = 1
)

func main() {
	var hostPort string
	var logJSON bool
	var showHelp bool

	pflag.StringVarP(&hostPort, "listen", "l", "127.0.0.1:6969", "host:port to listen on")
	pflag.BoolVarP(&logJSON, "log-json", "j", false, "Log in JSON (default is plaintext)")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.Parse()

	if showHelp {
		fmt.Fprintf(os.Stdout, "usage: %s [opts]\n\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(0)
	}

	var logger *slog.Logger
	if logJSON {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	value, metadata, err := sampleDragonRiders()
	if err != nil {
		logger.Error("failed to build sample data", "error", err.Error())
		os.Exit(1)
	}

	cache := xbf.NewMetadataCache()
	fingerprint, serializedMetadata, err := cache.Store(metadata)
	if err != nil {
		logger.Error("failed to fingerprint metadata", "error", err.Error())
		os.Exit(1)
	}
	logger.Info("sample dataset ready", "fingerprint", fingerprint)

	if err := run(hostPort, logger, serializedMetadata, value); err != nil {
		logger.Error("run loop error", "error", err.Error())
		os.Exit(1)
	}
}

// run accepts connections and serves each under an errgroup so a
// SIGINT/SIGTERM stops accepting new connections and waits for
// in-flight ones to finish, instead of leaking goroutines on exit.
func run(hostPort string, logger *slog.Logger, serializedMetadata []byte, value xbf.Value) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", hostPort)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", hostPort, err)
	}
	go func() {
		<-ctx.Done()
		listener.Close()
	}()
	logger.Info("xbf-go-server listening", "hostPort", hostPort)

	g, _ := errgroup.WithContext(ctx)
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break // shutting down
			}
			logger.Error("accept failed", "error", err.Error())
			continue
		}
		connID := uuid.New().String()
		g.Go(func() error {
			handleConn(conn, connID, logger, serializedMetadata, value)
			return nil
		})
	}
	return g.Wait()
}

func handleConn(conn net.Conn, connID string, logger *slog.Logger, serializedMetadata []byte, value xbf.Value) {
	defer conn.Close()
	logger.Info("connection accepted", "conn", connID, "remote", conn.RemoteAddr().String())

	reader := bufio.NewReader(conn)
	writer := bufio.NewWriter(conn)

	requestCode, err := reader.ReadByte()
	if err != nil {
		logger.Warn("failed to read request code", "conn", connID, "error", err.Error())
		return
	}

	if requestCode == requestFull {
		// only code 0 gets metadata; any other code, recognized or
		// not, is value-only.
		if _, err := writer.Write(serializedMetadata); err != nil {
			logger.Warn("failed to write metadata", "conn", connID, "error", err.Error())
			return
		}
	}
	if err := value.SerializeValue(writer); err != nil {
		logger.Warn("failed to write value", "conn", connID, "error", err.Error())
		return
	}
	if err := writer.Flush(); err != nil {
		logger.Warn("failed to flush", "conn", connID, "error", err.Error())
		return
	}
	logger.Info("request served", "conn", connID, "requestCode", requestCode)
}

// sampleDragonRiders builds the same three-rider vector the original
// xbf_rs example server demonstrates the metadata-cache protocol with.
func sampleDragonRiders() (xbf.Value, xbf.Metadata, error) {
	riderMetadata, err := xbf.NewStructMetadata("DragonRider", []xbf.StructField{
		{Name: "name", Metadata: xbf.PrimitiveMetadata_String},
		{Name: "age", Metadata: xbf.PrimitiveMetadata_U16},
	})
	if err != nil {
		return nil, nil, err
	}

	riders := []struct {
		name string
		age  uint16
	}{
		{"Eragon", 16},
		{"Arya", 103},
		{"Galbatorix", 133},
	}

	elements := make([]xbf.Value, 0, len(riders))
	for _, r := range riders {
		s, err := xbf.NewStruct(riderMetadata, []xbf.Value{xbf.String(r.name), xbf.U16(r.age)})
		if err != nil {
			return nil, nil, err
		}
		elements = append(elements, s)
	}

	vecMetadata := xbf.NewVectorMetadata(riderMetadata)
	vec, err := xbf.NewVector(vecMetadata, elements)
	if err != nil {
		return nil, nil, err
	}
	return vec, vecMetadata, nil
}
