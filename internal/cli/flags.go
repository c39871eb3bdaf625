package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	DataDir string `long:"data-dir" description:"Directory containing the CSV dataset (overrides config)" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// StatusCommand — show per-entity counts, date coverage, top tags.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}

// ReportCommand — run one aggregation and print it.
type ReportCommand struct {
	From  string `long:"from" description:"Only count events on or after this date"`
	To    string `long:"to" description:"Only count events on or before this date"`
	Limit int    `long:"limit" description:"Maximum rows to print (0 = config default, -1 = all)" default:"0"`

	globals *GlobalFlags
	version string
}

// SearchCommand — filtered search over one entity.
type SearchCommand struct {
	Query    string   `long:"query" short:"q" description:"Substring to match (username, comment text, or tag name)"`
	User     string   `long:"user" description:"Filter by user id"`
	Photo    string   `long:"photo" description:"Filter by photo id (comments)"`
	Tags     []string `long:"tag" description:"Filter photos by tag name (repeatable)"`
	MinLikes int      `long:"min-likes" description:"Minimum likes received (photos)" default:"0"`
	MinCount int      `long:"min-count" description:"Minimum photo associations (tags)" default:"0"`
	From     string   `long:"from" description:"Only records on or after this date"`
	To       string   `long:"to" description:"Only records on or before this date"`
	Limit    int      `long:"limit" description:"Maximum rows to print (0 = all)" default:"0"`

	globals *GlobalFlags
	version string
}

// ServeCommand — serve the dashboard JSON API.
type ServeCommand struct {
	Host string `long:"host" description:"Override listen host"`
	Port int    `long:"port" description:"Override listen port"`

	globals *GlobalFlags
	version string
}

// GenCommand — write a synthetic CSV dataset.
type GenCommand struct {
	Out       string  `long:"out" description:"Output directory" default:"./data"`
	Users     int     `long:"users" description:"Number of users" default:"50"`
	Tags      int     `long:"tags" description:"Number of tags" default:"20"`
	Photos    int     `long:"photos" description:"Number of photos" default:"200"`
	PhotoTags int     `long:"photo-tags" description:"Number of photo-tag associations" default:"400"`
	Likes     int     `long:"likes" description:"Number of likes" default:"1000"`
	Follows   int     `long:"follows" description:"Number of follows" default:"300"`
	Comments  int     `long:"comments" description:"Number of comments" default:"500"`
	Dirty     float64 `long:"dirty" description:"Fraction of rows with bad dates or dangling ids (0..1)" default:"0"`
	Seed      int64   `long:"seed" description:"Random seed (0 = time-based)" default:"0"`

	globals *GlobalFlags
	version string
}
