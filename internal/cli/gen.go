package cli

import (
	"fmt"
	"time"

	"github.com/instalens/instalens/internal/datagen"
)

// Execute implements the go-flags Commander interface for GenCommand.
func (c *GenCommand) Execute(args []string) error {
	if c.Dirty < 0 || c.Dirty > 1 {
		return fmt.Errorf("--dirty must be between 0 and 1, got %v", c.Dirty)
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ds := datagen.Generate(datagen.Options{
		Users:         c.Users,
		Tags:          c.Tags,
		Photos:        c.Photos,
		PhotoTags:     c.PhotoTags,
		Likes:         c.Likes,
		Follows:       c.Follows,
		Comments:      c.Comments,
		DirtyFraction: c.Dirty,
		Seed:          seed,
	})

	if err := datagen.WriteCSV(ds, c.Out); err != nil {
		return err
	}

	fmt.Printf("Wrote dataset to %s\n", c.Out)
	fmt.Printf("  users=%d tags=%d photos=%d photo_tags=%d likes=%d follows=%d comments=%d\n",
		len(ds.Users), len(ds.Tags), len(ds.Photos), len(ds.PhotoTags), len(ds.Likes), len(ds.Follows), len(ds.Comments))
	return nil
}
