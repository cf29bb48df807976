package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/clocked/internal/storage"
)

var pullOutput string

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Save every event from the service to a local snapshot",
	Long: `Fetch all records from the time service and store them as a JSON array,
field for field as the service returned them. The snapshot can be fed back
with "clocked summary --input <file>".`,
	Args: cobra.NoArgs,
	RunE: runPull,
}

func init() {
	pullCmd.Flags().StringVarP(&pullOutput, "output", "o", "", "Snapshot file (default ~/.clocked/events.json)")
}

func runPull(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	path := pullOutput
	if path == "" {
		base, err := storage.BaseDir()
		if err != nil {
			fail(2, err)
		}
		path = filepath.Join(base, "events.json")
	}

	raw, err := newClient(cmd.Context(), cfg).FetchSnapshot(cmd.Context())
	if err != nil {
		fail(2, err)
	}
	if err := storage.SaveSnapshot(path, raw); err != nil {
		fail(2, err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Saved %d records to %s", len(raw), path)))
	return nil
}
