package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jigsaw-drop/internal/storage"
)

var soundCmd = &cobra.Command{
	Use:   "sound [music] [on|off]",
	Short: "Show or change the sound and music settings",
	Long: `Without an argument prints whether sound and background music are on.
'sound on|off' switches all audio; 'sound music on|off' switches only the
background loop. Both settings are stored in the scores database and apply
to play and menu.

Examples:
  jigsawdrop sound off
  jigsawdrop sound music off`,
	Args: cobra.MaximumNArgs(2),
	Run:  runSound,
}

func runSound(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	set := store.SetSoundEnabled
	if len(args) > 0 && args[0] == "music" {
		set = store.SetMusicEnabled
		args = args[1:]
	}
	switch len(args) {
	case 0:
	case 1:
		on, err := parseOnOff(args[0])
		if err == nil {
			err = set(on)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: usage: jigsawdrop sound [music] [on|off]")
		os.Exit(1)
	}

	fmt.Printf("Sound is %s\n", onOff(store.SoundEnabled()))
	fmt.Printf("Music is %s\n", onOff(store.MusicEnabled()))
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
