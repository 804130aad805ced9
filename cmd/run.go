package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docprobe/docprobe/internal/answers"
	"github.com/docprobe/docprobe/internal/embedding"
	"github.com/docprobe/docprobe/internal/llm"
	"github.com/docprobe/docprobe/internal/pipeline"
	"github.com/docprobe/docprobe/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run [document text]",
	Short: "Run the full probe pipeline on a document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := resolveDocument(cmd, args)
		if err != nil {
			return err
		}

		docType, _ := cmd.Flags().GetString("type")
		outPath, _ := cmd.Flags().GetString("out")

		var qs []string
		if qPath, _ := cmd.Flags().GetString("questions"); qPath != "" {
			data, err := os.ReadFile(qPath)
			if err != nil {
				return fmt.Errorf("read questions file: %w", err)
			}
			qs, err = answers.NormalizeQuestions(data)
			if err != nil {
				return fmt.Errorf("parse %s: %w", qPath, err)
			}
		}

		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return err
		}

		embedder, err := embedding.NewOpenAIEmbedder(embedding.ConfigFromEnv())
		if err != nil {
			return err
		}

		out, err := pipeline.New(provider, embedder).Run(ctx, pipeline.Input{
			Document:  doc,
			DocType:   docType,
			Questions: qs,
			OutPath:   outPath,
		})
		if err != nil {
			return err
		}

		fmt.Println(pipeline.Render(out.Result))
		if outPath != "" {
			fmt.Printf("Result written to %s (run %s)\n", outPath, out.RunID)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().String("file", "", "Read the document from a file")
	runCmd.Flags().String("type", "text", "Document type label included in the prompt")
	runCmd.Flags().String("questions", "", "Answer questions from a JSON file instead of generating them")
	runCmd.Flags().String("out", pipeline.DefaultOutPath, "Result file path")
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve request-log path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open request log: %w", err)
	}
	return st, nil
}
