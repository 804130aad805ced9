package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docprobe/docprobe/internal/ui"
)

// resolveDocument collects the document text in priority order: positional
// argument, --file flag, piped stdin, interactive prompt.
func resolveDocument(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		doc := strings.TrimSpace(args[0])
		if doc == "" {
			return "", fmt.Errorf("document argument is empty")
		}
		return doc, nil
	}

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read document file: %w", err)
		}
		doc := strings.TrimSpace(string(data))
		if doc == "" {
			return "", fmt.Errorf("document file %s is empty", path)
		}
		return doc, nil
	}

	if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		doc := strings.TrimSpace(string(data))
		if doc == "" {
			return "", fmt.Errorf("no document text on stdin")
		}
		return doc, nil
	}

	doc, err := ui.PromptDocument()
	if err != nil {
		return "", err
	}
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return "", fmt.Errorf("no document text entered")
	}
	return doc, nil
}
