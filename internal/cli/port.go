package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"OnionShare-NG/internal/util"
)

var (
	portMin int
	portMax int
)

var portCmd = &cobra.Command{
	Use:   "port",
	Short: "Find a free loopback TCP port",
	Long: `Probes random ports on 127.0.0.1 within the range until one binds,
and prints it. The default range is the one the local web server uses.`,
	RunE: runPort,
}

func init() {
	portCmd.SilenceErrors = true
	portCmd.SilenceUsage = true
	rootCmd.AddCommand(portCmd)

	portCmd.Flags().IntVar(&portMin, "min", 17600, "Lowest port to try")
	portCmd.Flags().IntVar(&portMax, "max", 17650, "Highest port to try")
}

func runPort(cmd *cobra.Command, args []string) error {
	port, err := util.GetAvailablePort(portMin, portMax)
	if err != nil {
		return err
	}
	fmt.Println(port)
	return nil
}
