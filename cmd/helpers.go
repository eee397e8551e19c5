package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// confirm asks the user before a destructive operation. Anything other than
// "y" or "yes" declines.
func confirm(cmd *cobra.Command, message string) (bool, error) {
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", message); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// parsePropertyFlags splits repeated name=value flags. Order of the input
// slice is preserved in the returned names.
func parsePropertyFlags(pairs []string) ([]string, map[string]string, error) {
	names := make([]string, 0, len(pairs))
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, nil, fmt.Errorf("invalid property %q (want name=value)", pair)
		}
		if _, dup := values[name]; !dup {
			names = append(names, name)
		}
		values[name] = value
	}
	return names, values, nil
}

// contentArg treats the value as a file path when one exists, otherwise as
// literal text.
func contentArg(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	info, err := os.Stat(value)
	if err == nil && !info.IsDir() {
		data, err := os.ReadFile(value) // #nosec G304 -- reading user-supplied content by design
		if err != nil {
			return "", fmt.Errorf("read content file: %w", err)
		}
		return string(data), nil
	}
	return value, nil
}
