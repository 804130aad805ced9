package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docprobe/docprobe/internal/grading"
	"github.com/docprobe/docprobe/internal/llm"
	"github.com/docprobe/docprobe/internal/pipeline"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <qa-pairs.json>",
	Short: "Grade an existing QA-pair file against the rubric",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, err := pipeline.ReadQAPairs(args[0])
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

		eval, err := grading.New(provider, grading.DefaultConfig()).Evaluate(ctx, pairs)
		if err != nil {
			return err
		}

		result := &pipeline.Result{QAPairs: pairs, Evaluation: eval}
		fmt.Println(pipeline.Render(result))

		if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
			if err := result.WriteFile(outPath); err != nil {
				return err
			}
			fmt.Printf("Result written to %s\n", outPath)
		}
		return nil
	},
}

func init() {
	gradeCmd.Flags().String("out", "", "Write the graded result to a file")
}
