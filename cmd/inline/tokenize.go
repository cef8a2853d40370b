package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"inline/internal/diag"
	"inline/internal/lexer"
	"inline/internal/source"
	"inline/internal/token"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file...",
		Short: "Show the tokens the declaration scanner sees",
		Long: `Tokenize prints the token stream used to find module declarations.
Comments and whitespace are skipped, exactly as during inlining.
A file named "-" is read from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

type tokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

const stdinName = "<stdin>"

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, _, err := loadOptions(cmd, args[0])
	if err != nil {
		return err
	}

	fileSet := source.NewFileSet()
	out := cmd.OutOrStdout()
	for _, filePath := range args {
		fileID, err := loadTokenizeInput(cmd, fileSet, filePath)
		if err != nil {
			return err
		}
		file := fileSet.Get(fileID)

		tokens, lexErr := lexer.New(file, lexer.Options{Keyword: opts.Dialect.Keyword}).All()

		// Выводим то, что успели разобрать, даже если дальше ошибка
		switch format {
		case "json":
			err = formatTokensJSON(out, tokens)
		default:
			if len(args) > 1 {
				if _, err := fmt.Fprintf(out, "==> %s <==\n", file.Path); err != nil {
					return err
				}
			}
			err = formatTokensPretty(out, tokens, fileSet)
		}
		if err != nil {
			return err
		}
		if lexErr != nil {
			return lexErr
		}
	}
	return nil
}

func loadTokenizeInput(cmd *cobra.Command, fileSet *source.FileSet, filePath string) (source.FileID, error) {
	if filePath == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return 0, diag.Wrap(diag.ReadFailure, stdinName, "failed to read stdin", err)
		}
		return fileSet.AddVirtual(stdinName, data), nil
	}
	fileID, err := fileSet.Load(filePath)
	if err != nil {
		return 0, diag.Wrap(diag.ReadFailure, filePath, "failed to read "+filePath, err)
	}
	return fileID, nil
}

// formatTokensPretty выводит токены в человекочитаемом формате
func formatTokensPretty(w io.Writer, tokens []token.Token, fileSet *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fileSet.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%3d: %-10s %q at %d:%d-%d:%d\n",
			i+1, tok.Kind, tok.Text, start.Line, start.Col, end.Line, end.Col); err != nil {
			return err
		}
	}
	return nil
}

// formatTokensJSON выводит токены в JSON формате
func formatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]tokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
