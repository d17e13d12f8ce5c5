package arg

import (
	"fmt"
	"log"

	"github.com/godbus/dbus/v5"
	"github.com/spf13/cobra"

	"github.com/1M4nt0/solidtime-tracker/internal/ipc"
)

var resumeCmd = &cobra.Command{
	Use:     "resume",
	Aliases: []string{"r"},
	Short:   "Resume time tracking",
	Run: func(cmd *cobra.Command, args []string) {
		conn, err := dbus.ConnectSessionBus()
		if err != nil {
			log.Fatal("Failed to connect to session bus:", err)
		}
		defer conn.Close()

		obj := conn.Object(ipc.ServiceName, dbus.ObjectPath(ipc.ObjectPath))

		call := obj.Call(ipc.InterfaceName+".Resume", 0)
		if call.Err != nil {
			log.Fatal("Failed to call method:", call.Err)
		}

		fmt.Println("Time tracking resumed")
	},
}

func init() {
	rootCmd.AddCommand(resumeCmd)
}
