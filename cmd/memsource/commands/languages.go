package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// NewLanguagesCommand creates the languages command group.
func NewLanguagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "languages",
		Aliases: []string{"language", "langs"},
		Short:   "Show supported languages",
		Long:    "List the language codes accepted for source and target languages",
	}

	cmd.AddCommand(newLanguagesListCommand())
	cmd.AddCommand(newLanguagesGetCommand())

	return cmd
}

func newLanguagesListCommand() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List languages",
		Long:  "List all supported languages, optionally narrowed by code or name",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			session, err := getSession(ctx)
			if err != nil {
				return err
			}

			languages, err := session.Languages().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list languages: %w", err)
			}

			matches := filterLanguages(languages.Languages, search)

			structured, err := writeStructured(cmd.OutOrStdout(), matches)
			if structured || err != nil {
				return err
			}

			if len(matches) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No languages found")

				return nil
			}

			rows := make([][]string, 0, len(matches))
			for _, lang := range matches {
				rows = append(rows, []string{lang.Code, lang.Name, displayValue(lang.RFC)})
			}

			return renderTable(cmd.OutOrStdout(), []string{"Code", "Name", "RFC"}, rows)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive match on code or name")

	return cmd
}

func newLanguagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CODE",
		Short: "Get language details",
		Long:  "Display the platform specific codes of a language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			session, err := getSession(ctx)
			if err != nil {
				return err
			}

			lang, err := session.Languages().Find(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get language: %w", err)
			}

			structured, err := writeStructured(cmd.OutOrStdout(), lang)
			if structured || err != nil {
				return err
			}

			return renderProperties(cmd.OutOrStdout(), [][]string{
				{"Code", lang.Code},
				{"Name", lang.Name},
				{"RFC", displayValue(lang.RFC)},
				{"Android", displayValue(lang.Android)},
				{"Android BCP", displayValue(lang.AndroidBCP)},
				{"Mac", displayValue(lang.MAC)},
				{"Microsoft", displayValue(lang.Ms)},
			})
		},
	}
}

// filterLanguages keeps languages whose code or name contains search.
func filterLanguages(languages []memsource.Language, search string) []memsource.Language {
	if search == "" {
		return languages
	}

	needle := strings.ToLower(search)
	matches := make([]memsource.Language, 0, len(languages))

	for _, lang := range languages {
		if strings.Contains(strings.ToLower(lang.Code), needle) || strings.Contains(strings.ToLower(lang.Name), needle) {
			matches = append(matches, lang)
		}
	}

	return matches
}
