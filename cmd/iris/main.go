package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/vectorize-io/vectorize-iris/pkg/iris"
)

func main() {
	var schemas stringsFlag

	tokenFlag := flag.String("token", "", "API token (defaults to VECTORIZE_API_TOKEN)")
	orgFlag := flag.String("org", "", "organization id (defaults to VECTORIZE_ORG_ID)")
	endpointFlag := flag.String("endpoint", "", "API endpoint override")

	chunkSizeFlag := flag.Int("chunk-size", 0, "chunk size (0 leaves the server default)")
	flag.Var(&schemas, "metadata-schema", "metadata schema as ID:JSON (repeatable, disables schema inference)")
	inferFlag := flag.Bool("infer-metadata-schema", true, "infer the metadata schema automatically")
	instructionsFlag := flag.String("parsing-instructions", "", "instructions for the parsing model")

	pollFlag := flag.Duration("poll-interval", 2*time.Second, "delay between status checks")
	timeoutFlag := flag.Duration("timeout", 5*time.Minute, "maximum time to wait for extraction")

	formatFlag := flag.String("output", "json", "output format (json, yaml, text)")
	fileFlag := flag.String("file", "", "write output to this file (directory in batch mode)")

	verboseFlag := flag.Bool("verbose", false, "log requests and responses")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: iris [flags] <file|directory|url>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	switch *formatFlag {
	case "json", "yaml", "text":
	default:
		fatal(fmt.Errorf("unknown output format %q", *formatFlag))
	}

	var options []iris.Option

	if *tokenFlag != "" {
		options = append(options, iris.WithToken(*tokenFlag))
	}

	if *orgFlag != "" {
		options = append(options, iris.WithOrganization(*orgFlag))
	}

	if *endpointFlag != "" {
		options = append(options, iris.WithEndpoint(*endpointFlag))
	}

	options = append(options,
		iris.WithPollInterval(*pollFlag),
		iris.WithTimeout(*timeoutFlag),
	)

	if *verboseFlag {
		options = append(options, iris.WithClient(&http.Client{
			Transport: newLogTransport(slog.Default()),
		}))
	}

	client, err := iris.New(options...)

	if err != nil {
		fatal(err)
	}

	extraction, err := extractionOptions(*chunkSizeFlag, schemas, *inferFlag, *instructionsFlag)

	if err != nil {
		fatal(err)
	}

	ctx := context.Background()

	if err := run(ctx, client, flag.Arg(0), extraction, *formatFlag, *fileFlag); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func run(ctx context.Context, client *iris.Client, input string, options *iris.ExtractionOptions, format, output string) error {
	if isURL(input) {
		file, err := download(ctx, input)

		if err != nil {
			return err
		}

		result, err := client.Extract(ctx, file, options)

		if err != nil {
			return err
		}

		return writeResult(result, format, output)
	}

	if info, err := os.Stat(input); err == nil && info.IsDir() {
		return runDirectory(ctx, client, input, options, format, output)
	}

	result, err := client.ExtractFile(ctx, input, options)

	if err != nil {
		return err
	}

	return writeResult(result, format, output)
}

// runDirectory extracts every regular file in dir. Failures are reported per
// file; the batch keeps going.
func runDirectory(ctx context.Context, client *iris.Client, dir string, options *iris.ExtractionOptions, format, output string) error {
	entries, err := os.ReadDir(dir)

	if err != nil {
		return err
	}

	if output != "" {
		if err := os.MkdirAll(output, 0o755); err != nil {
			return err
		}
	}

	var processed, failed int

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		processed++

		name := entry.Name()

		result, err := client.ExtractFile(ctx, filepath.Join(dir, name), options)

		if err != nil {
			slog.Error("extraction failed", "file", name, "error", err)
			failed++

			continue
		}

		target := ""

		if output != "" {
			stem := strings.TrimSuffix(name, filepath.Ext(name))
			target = filepath.Join(output, stem+"."+formatExtension(format))
		}

		if err := writeResult(result, format, target); err != nil {
			slog.Error("writing output failed", "file", name, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, processed)
	}

	return nil
}

func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

func download(ctx context.Context, source string) (iris.File, error) {
	req, _ := http.NewRequestWithContext(ctx, "GET", source, nil)

	resp, err := http.DefaultClient.Do(req)

	if err != nil {
		return iris.File{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return iris.File{}, fmt.Errorf("failed to download file: %s", resp.Status)
	}

	content, err := io.ReadAll(resp.Body)

	if err != nil {
		return iris.File{}, err
	}

	name := "document"

	if u, err := url.Parse(source); err == nil {
		if base := path.Base(u.Path); base != "" && base != "/" && base != "." {
			name = base
		}
	}

	return iris.File{
		Name: name,

		Content:     content,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func extractionOptions(chunkSize int, schemas []string, infer bool, instructions string) (*iris.ExtractionOptions, error) {
	parsed, err := parseSchemas(schemas)

	if err != nil {
		return nil, err
	}

	// Explicit schemas imply classification against those schemas only.
	if len(parsed) > 0 {
		infer = false
	}

	options := &iris.ExtractionOptions{
		MetadataSchemas:     parsed,
		InferMetadataSchema: &infer,

		ParsingInstructions: instructions,
	}

	if chunkSize > 0 {
		options.ChunkSize = &chunkSize
	}

	return options, nil
}

type stringsFlag []string

func (f *stringsFlag) String() string {
	return strings.Join(*f, ", ")
}

func (f *stringsFlag) Set(value string) error {
	*f = append(*f, value)
	return nil
}
