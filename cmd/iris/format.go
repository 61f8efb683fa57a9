package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vectorize-io/vectorize-iris/pkg/iris"

	"gopkg.in/yaml.v3"
)

func writeResult(result *iris.Result, format, path string) error {
	var data []byte
	var err error

	switch format {
	case "json":
		data, err = json.MarshalIndent(result, "", "  ")

	case "yaml":
		data, err = yaml.Marshal(result)

	case "text":
		data = []byte(result.Text)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	if err != nil {
		return err
	}

	if path == "" {
		_, err := fmt.Println(string(data))
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func formatExtension(format string) string {
	if format == "text" {
		return "txt"
	}

	return format
}
