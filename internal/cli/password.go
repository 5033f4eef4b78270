package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"OnionShare-NG/internal/common"
	"OnionShare-NG/internal/passgen"
)

var (
	pwCount    int
	pwScore    bool
	pwHash     bool
	pwWordlist string
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Generate wordlist passwords",
	Long: `Generates passwords of the form word-word from the bundled wordlist,
the way a share's onion service is protected. Each word is picked with a
cryptographically secure random source.`,
	RunE: runPassword,
}

func init() {
	passwordCmd.SilenceErrors = true
	passwordCmd.SilenceUsage = true
	rootCmd.AddCommand(passwordCmd)

	passwordCmd.Flags().IntVarP(&pwCount, "count", "n", 1, "Number of passwords to generate")
	passwordCmd.Flags().BoolVar(&pwScore, "score", false, "Show the zxcvbn strength score (0-4)")
	passwordCmd.Flags().BoolVar(&pwHash, "hash", false, "Also print an Argon2id hash of each password")
	passwordCmd.Flags().StringVar(&pwWordlist, "wordlist", "", "Wordlist file (default: bundled share/wordlist.txt)")
}

func runPassword(cmd *cobra.Command, args []string) error {
	c, err := common.New(common.Options{
		WordlistPath: pwWordlist,
		Verbose:      verbose,
	})
	if err != nil {
		return err
	}

	for i := 0; i < pwCount; i++ {
		pw, err := c.BuildPassword()
		if err != nil {
			return err
		}
		c.Log("cli", runPassword, "built password")

		if pwScore {
			fmt.Printf("%s (score %d/4)\n", pw, passgen.Strength(pw))
		} else {
			fmt.Println(pw)
		}
		if pwHash {
			hash, err := passgen.HashPassword(pw)
			if err != nil {
				return err
			}
			fmt.Println(hash)
		}
	}
	return nil
}
