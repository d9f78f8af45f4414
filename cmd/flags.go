package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddFlagValidation wraps a flag's value so it is validated at parse
// time, before the command's RunE sees it.
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.Value.Set(val)
}

// ValidateFormat restricts a flag to the given output formats.
func ValidateFormat(formats ...string) func(string) error {
	return func(val string) error {
		for _, format := range formats {
			if val == format {
				return nil
			}
		}
		return fmt.Errorf("invalid output format %s, must be one of: %s",
			val, strings.Join(formats, ", "))
	}
}

// ValidateDirExists rejects paths that do not name an existing directory.
func ValidateDirExists(val string) error {
	info, err := os.Stat(val)
	if err != nil {
		return fmt.Errorf("directory does not exist: %s", val)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", val)
	}
	return nil
}
