package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docprobe/docprobe/internal/llm"
	"github.com/docprobe/docprobe/internal/questions"
)

var questionsCmd = &cobra.Command{
	Use:   "questions [document text]",
	Short: "Generate the ten probe questions only",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := resolveDocument(cmd, args)
		if err != nil {
			return err
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

		qs, err := questions.New(provider, questions.DefaultConfig()).Generate(ctx, doc)
		if err != nil {
			return err
		}

		for i, q := range qs {
			fmt.Printf("%2d. %s\n", i+1, q)
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("file", "", "Read the document from a file")
}
