package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// completeMonsterNames provides completion for monster names
func completeMonsterNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Only the first argument names a monster
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ds, err := loadDataset(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	prefix := strings.ToLower(toComplete)
	var completions []string
	for _, rec := range ds.Records() {
		if !strings.HasPrefix(strings.ToLower(rec.Name.Name), prefix) {
			continue
		}
		// Format: name\tdescription (tab-separated for description)
		desc := "#" + strconv.Itoa(int(rec.ID))
		if rec.Name.Aka != "" {
			desc += " " + rec.Name.Aka
		}
		completions = append(completions, rec.Name.Name+"\t"+desc)
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
