// Command fitdump decodes a FIT file and prints one line per message.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fitkit/fit/decode"
	"github.com/fitkit/fit/sink"
	"github.com/fitkit/fit/types"
	"github.com/fitkit/fit/views"
	"github.com/spf13/cobra"
)

var (
	strict        bool
	globalMessage int
)

func dumpMessage(msg types.DecodedMessage) string {
	switch msg.GlobalMessageNumber {
	case views.GlobalMessageNumberRecord:
		return fmt.Sprintf("record   ts=%d %+v", msg.Timestamp, views.RecordFromFields(msg))
	case views.GlobalMessageNumberSession:
		return fmt.Sprintf("session  ts=%d %+v", msg.Timestamp, views.SessionFromFields(msg))
	case views.GlobalMessageNumberLap:
		return fmt.Sprintf("lap      ts=%d %+v", msg.Timestamp, views.LapFromFields(msg))
	case views.GlobalMessageNumberLength:
		return fmt.Sprintf("length   ts=%d %+v", msg.Timestamp, views.LengthFromFields(msg))
	case views.GlobalMessageNumberEvent:
		return fmt.Sprintf("event    ts=%d %+v", msg.Timestamp, views.EventFromFields(msg))
	case views.GlobalMessageNumberDeviceInfo:
		return fmt.Sprintf("device   ts=%d %+v", msg.Timestamp, views.DeviceInfoFromFields(msg))
	case views.GlobalMessageNumberFileID:
		return fmt.Sprintf("file_id  %+v", views.FileIDFromFields(msg))
	default:
		return fmt.Sprintf("global=%-3d ts=%d fields=%d", msg.GlobalMessageNumber, msg.Timestamp, len(msg.Fields))
	}
}

func run(cmd *cobra.Command, args []string) {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	var opts []decode.Option
	if strict {
		opts = append(opts, decode.WithStrictMode())
	}

	count := 0
	snk := sink.Func(func(msg types.DecodedMessage, _ any) error {
		if globalMessage >= 0 && int(msg.GlobalMessageNumber) != globalMessage {
			return nil
		}
		fmt.Println(dumpMessage(msg))
		count++
		return nil
	})

	hdr, err := decode.Decode(f, snk, nil, opts...)
	if err != nil {
		log.Fatalf("decoding %s: %v", path, err)
	}

	log.Printf("decoded %d message(s), protocol=%d profile=%d", count, hdr.ProtocolVersion, hdr.ProfileVersion)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "fitdump <path>",
		Short: "Dump the messages in a FIT file",
		Args:  cobra.ExactArgs(1),
		Run:   run,
	}

	rootCmd.Flags().BoolVar(&strict, "strict", false, "treat a reserved-bit violation as a malformed-stream error")
	rootCmd.Flags().IntVar(&globalMessage, "global-message", -1, "only print messages with this global message number")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
