// Copyright (c) 2026 Neomantra Corp

// xbf-go-file inspects and converts XBF-encoded files.

package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/nimblemarkets/xbf-go"
	"github.com/nimblemarkets/xbf-go/internal/xbffixture"
	"github.com/nimblemarkets/xbf-go/internal/xbfparquet"

	"github.com/dustin/go-humanize"
	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
)

///////////////////////////////////////////////////////////////////////////////

var (
	verbose bool

	destFile string // destination file, for subcommands producing one output

	forceZstdInput  = false // force input to be zstd, irrespective of filename suffix
	forceZstdOutput = false // force output to be zstd, irrespective of filename suffix

	maxValues int // cap on decoded values for the json subcommand
)

func requireNoError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

func requireNoErrorWithoutPrint(err error) {
	if err != nil {
		os.Exit(1)
	}
}

///////////////////////////////////////////////////////////////////////////////

func main() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(metadataCmd)
	metadataCmd.Flags().BoolVarP(&forceZstdInput, "zstd", "z", false, "Input is zstd (useful for handling zstd on stdin)")

	rootCmd.AddCommand(jsonPrintCmd)
	jsonPrintCmd.Flags().BoolVarP(&forceZstdInput, "zstd", "z", false, "Input is zstd (useful for handling zstd on stdin)")
	jsonPrintCmd.Flags().IntVarP(&maxValues, "max-values", "n", 0, "Max values to print (<=0 is unlimited)")

	rootCmd.AddCommand(statCmd)
	statCmd.Flags().BoolVarP(&forceZstdInput, "zstd", "z", false, "Input is zstd (useful for handling zstd on stdin)")

	rootCmd.AddCommand(stubCmd)
	stubCmd.Flags().StringVarP(&destFile, "dest", "d", "", "Destination file ('-' for stdout)")
	stubCmd.Flags().BoolVarP(&forceZstdOutput, "zstd", "z", false, "Compress output with zstd")
	stubCmd.MarkFlagRequired("dest")

	rootCmd.AddCommand(parquetCmd)
	parquetCmd.Flags().BoolVarP(&forceZstdInput, "zstd", "z", false, "Input is zstd (useful for handling zstd on stdin)")
	parquetCmd.Flags().StringVarP(&destFile, "dest", "d", "", "Destination Parquet file")
	parquetCmd.MarkFlagRequired("dest")

	rootCmd.AddCommand(queryCmd)

	err := rootCmd.Execute()
	requireNoErrorWithoutPrint(err)
}

///////////////////////////////////////////////////////////////////////////////

var rootCmd = &cobra.Command{
	Use:   "xbf-go-file",
	Short: "xbf-go-file inspects and converts XBF-encoded files",
	Long:  "xbf-go-file inspects and converts XBF-encoded files",
}

///////////////////////////////////////////////////////////////////////////////

var metadataCmd = &cobra.Command{
	Use:   "metadata file...",
	Short: `Prints the specified file's leading metadata as JSON`,
	Long:  `Prints the specified file's leading metadata as JSON`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, sourceFile := range args {
			if err := printMetadata(sourceFile, forceZstdInput); err != nil {
				fmt.Fprintf(os.Stderr, "error: reading %s: %s\n", sourceFile, err.Error())
			}
		}
	},
}

func printMetadata(sourceFile string, forceZstd bool) error {
	reader, closer, err := xbf.MakeCompressedReader(sourceFile, forceZstd)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	defer closer.Close()

	metadata, err := xbf.DeserializeMetadata(reader)
	if err != nil {
		return fmt.Errorf("failed to read metadata: %w", err)
	}

	jbytes, err := json.Marshal(xbf.DescribeMetadata(metadata))
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	fmt.Printf("%s\n", jbytes)
	return nil
}

///////////////////////////////////////////////////////////////////////////////

var jsonPrintCmd = &cobra.Command{
	Use:   "json file...",
	Short: `Prints the specified file's decoded values as JSON, one per line`,
	Long:  `Prints the specified file's decoded values as JSON, one per line`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, sourceFile := range args {
			if err := printValuesAsJson(sourceFile, forceZstdInput, maxValues); err != nil {
				fmt.Fprintf(os.Stderr, "error: reading %s: %s\n", sourceFile, err.Error())
			}
		}
	},
}

func printValuesAsJson(sourceFile string, forceZstd bool, maxValues int) error {
	reader, closer, err := xbf.MakeCompressedReader(sourceFile, forceZstd)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	defer closer.Close()

	scanner := xbf.NewStreamScanner(reader)
	if _, err := scanner.Metadata(); err != nil {
		return fmt.Errorf("scanner failed to read metadata: %w", err)
	}

	count := 0
	for (maxValues <= 0 || count < maxValues) && scanner.Next() {
		j, err := xbf.ValueToJSON(scanner.Value())
		if err != nil {
			return fmt.Errorf("failed to convert value %d to JSON: %w", count, err)
		}
		jbytes, err := json.Marshal(j)
		if err != nil {
			return fmt.Errorf("failed to marshal value %d: %w", count, err)
		}
		fmt.Printf("%s\n", jbytes)
		count++
	}
	return scanner.Err()
}

///////////////////////////////////////////////////////////////////////////////

var statCmd = &cobra.Command{
	Use:   "stat file...",
	Short: `Prints a summary of the specified file: size, value count and top-level kind`,
	Long:  `Prints a summary of the specified file: size, value count and top-level kind`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, sourceFile := range args {
			if err := printStat(sourceFile, forceZstdInput); err != nil {
				fmt.Fprintf(os.Stderr, "error: reading %s: %s\n", sourceFile, err.Error())
			}
		}
	},
}

func printStat(sourceFile string, forceZstd bool) error {
	info, err := os.Stat(sourceFile)
	var sizeStr string
	if err == nil {
		sizeStr = humanize.Bytes(uint64(info.Size()))
	} else {
		sizeStr = "unknown"
	}

	reader, closer, err := xbf.MakeCompressedReader(sourceFile, forceZstd)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	defer closer.Close()

	scanner := xbf.NewStreamScanner(reader)
	metadata, err := scanner.Metadata()
	if err != nil {
		return fmt.Errorf("scanner failed to read metadata: %w", err)
	}

	count := 0
	for scanner.Next() {
		count++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner failed after %d value(s): %w", count, err)
	}

	fmt.Printf("%s: %s, %d value(s), kind=%s\n", sourceFile, sizeStr, count, kindLabel(metadata))
	return nil
}

func kindLabel(m xbf.Metadata) string {
	desc, ok := xbf.DescribeMetadata(m).(map[string]any)
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%v", desc["kind"])
}

///////////////////////////////////////////////////////////////////////////////

var stubCmd = &cobra.Command{
	Use:   "stub fixture.json",
	Short: `Builds an XBF file from a JSON fixture description (see internal/xbffixture)`,
	Long:  `Builds an XBF file from a JSON fixture description (see internal/xbffixture)`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireNoError(buildStub(args[0], destFile, forceZstdOutput))
	},
}

func buildStub(fixtureFile, destFile string, useZstd bool) error {
	fixtureBytes, err := os.ReadFile(fixtureFile)
	if err != nil {
		return fmt.Errorf("failed to read fixture: %w", err)
	}

	metadata, value, err := xbffixture.Parse(fixtureBytes)
	if err != nil {
		return fmt.Errorf("failed to parse fixture: %w", err)
	}

	writer, closeWriter, err := xbf.MakeCompressedWriter(destFile, useZstd)
	if err != nil {
		return fmt.Errorf("failed to open destination: %w", err)
	}
	defer closeWriter()

	if err := metadata.SerializeMetadata(writer); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	if err := value.SerializeValue(writer); err != nil {
		return fmt.Errorf("failed to write value: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "wrote %s (%s) to %s\n", metadata.Name(), kindLabel(metadata), destFile)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////

var parquetCmd = &cobra.Command{
	Use:   "parquet file",
	Short: `Exports a file whose top-level value is a vector of structs to Parquet`,
	Long:  `Exports a file whose top-level value is a vector of structs to Parquet`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireNoError(exportParquet(args[0], destFile, forceZstdInput))
	},
}

func exportParquet(sourceFile, destFile string, forceZstd bool) error {
	reader, closer, err := xbf.MakeCompressedReader(sourceFile, forceZstd)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	defer closer.Close()

	metadata, err := xbf.DeserializeMetadata(reader)
	if err != nil {
		return fmt.Errorf("failed to read metadata: %w", err)
	}
	vecMetadata, ok := metadata.(*xbf.VectorMetadata)
	if !ok {
		return fmt.Errorf("top-level value must be a vector, got %s", kindLabel(metadata))
	}
	structMetadata, ok := vecMetadata.Inner().(*xbf.StructMetadata)
	if !ok {
		return fmt.Errorf("vector element must be a struct, got %s", kindLabel(vecMetadata.Inner()))
	}

	value, err := xbf.DeserializeValue(metadata, reader)
	if err != nil {
		return fmt.Errorf("failed to read value: %w", err)
	}
	vec, ok := value.(*xbf.Vector)
	if !ok {
		return fmt.Errorf("expected a decoded vector value")
	}

	elements := make([]*xbf.Struct, 0, vec.Len())
	for _, el := range vec.Elements() {
		s, ok := el.(*xbf.Struct)
		if !ok {
			return fmt.Errorf("expected every element to be a struct")
		}
		elements = append(elements, s)
	}

	if err := xbfparquet.WriteVector(structMetadata, elements, destFile); err != nil {
		return fmt.Errorf("failed to write parquet: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "wrote %d row(s) to %s\n", len(elements), destFile)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////

var queryCmd = &cobra.Command{
	Use:   "query parquet-file sql",
	Short: `Runs a SQL SELECT against a file exported by "parquet", via an in-process DuckDB`,
	Long: `Runs a SQL SELECT against a file exported by "parquet", via an in-process DuckDB.
Reference the file's rows as the table "xbf", e.g.:

	xbf-go-file query riders.parquet "select name, age from xbf where age > 18"
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		requireNoError(runQuery(args[0], args[1]))
	},
}

func runQuery(parquetFile, sqlQuery string) error {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer db.Close()

	viewStmt := fmt.Sprintf("create view xbf as select * from read_parquet(%s)", quoteSqlLiteral(parquetFile))
	if _, err := db.Exec(viewStmt); err != nil {
		return fmt.Errorf("failed to register %s: %w", parquetFile, err)
	}

	rows, err := db.Query(sqlQuery)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("failed to read columns: %w", err)
	}

	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}

		record := make(map[string]any, len(columns))
		for i, col := range columns {
			record[col] = values[i]
		}
		jbytes, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal row: %w", err)
		}
		fmt.Printf("%s\n", jbytes)
	}
	return rows.Err()
}

// quoteSqlLiteral single-quotes a filename for DuckDB's read_parquet(),
// escaping any embedded single quote.
func quoteSqlLiteral(s string) string {
	escaped := ""
	for _, r := range s {
		if r == '\'' {
			escaped += "''"
		} else {
			escaped += string(r)
		}
	}
	return "'" + escaped + "'"
}
