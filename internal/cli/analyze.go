package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"codereview/internal/analyzer"
	"codereview/internal/logging"
	"codereview/internal/types"
)

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a code snippet from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}

	cmd.Flags().StringP("file", "f", "-", "Path to the code to analyze (- for stdin)")
	cmd.Flags().StringP("language", "l", string(types.LangPython), "Programming language of the code")
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, markdown)")
	cmd.Flags().String("out", "", "Directory to write code_analysis.csv and pie_chart.png to")
	cmd.Flags().BoolP("verbose", "v", false, "Include Good findings and the improved example")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	filePath, _ := cmd.Flags().GetString("file")
	langName, _ := cmd.Flags().GetString("language")
	format, _ := cmd.Flags().GetString("output")
	outDir, _ := cmd.Flags().GetString("out")
	verbose, _ := cmd.Flags().GetBool("verbose")

	// A positional path takes precedence over --file
	if len(args) == 1 {
		filePath = args[0]
	}

	lang, err := types.ParseLanguage(langName)
	if err != nil {
		return err
	}

	printer, err := newPrinter(format, verbose)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	code, err := readCode(cmd.InOrStdin(), filePath)
	if err != nil {
		return err
	}

	a := analyzer.NewAnalyzer(cfg, logging.Logger)
	analysis, err := a.Analyze(types.Submission{
		Language: lang,
		Code:     string(code),
	})
	if err != nil {
		return err
	}

	if err := printer.Print(cmd.OutOrStdout(), analysis); err != nil {
		return err
	}

	if outDir != "" {
		written, err := analysis.Artifacts.WriteDir(outDir)
		if err != nil {
			return err
		}
		logging.Logger.Infow("report written", "files", written)
	}

	return nil
}

func readCode(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read code file: %w", err)
	}
	return data, nil
}
