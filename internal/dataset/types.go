package dataset

// User is an account in the social network.
type User struct {
	ID        string
	Username  string
	CreatedAt string
}

// Tag is a photo tag label.
type Tag struct {
	ID        string
	TagName   string
	CreatedAt string
}

// Photo is a post. The creation date column is spelled created_dat in the
// source schema; the misspelling is part of the data contract and is read
// verbatim, not "fixed".
type Photo struct {
	ID         string
	UserID     string
	ImageURL   string
	CreatedDat string
}

// PhotoTag associates a photo with a tag. Pure join record, no timestamp.
// Duplicate pairs are tolerated and count as separate events.
type PhotoTag struct {
	PhotoID string
	TagID   string
}

// Like is a like event by a user on a photo. The (user, photo) pair is
// conceptually unique but never enforced; duplicates count as raw events.
type Like struct {
	UserID    string
	PhotoID   string
	CreatedAt string
}

// Follow is a directed follower -> followee edge.
type Follow struct {
	FollowerID string
	FolloweeID string
	CreatedAt  string
}

// Comment is a comment by a user on a photo.
type Comment struct {
	ID          string
	UserID      string
	PhotoID     string
	CommentText string
	CreatedAt   string
}

// Dataset holds the seven entity slices for one session. It is populated
// once by the loader and never mutated afterwards; all date fields stay raw
// strings so that unparseable values can be excluded downstream instead of
// being papered over at load time.
type Dataset struct {
	Users     []User
	Tags      []Tag
	Photos    []Photo
	PhotoTags []PhotoTag
	Likes     []Like
	Follows   []Follow
	Comments  []Comment
}

// Files maps each entity to its CSV file name inside the dataset directory.
type Files struct {
	Users     string
	Tags      string
	Photos    string
	PhotoTags string
	Likes     string
	Follows   string
	Comments  string
}

// DefaultFiles returns the canonical file names the dataset ships with.
func DefaultFiles() Files {
	return Files{
		Users:     "users.csv",
		Tags:      "tags.csv",
		Photos:    "photos.csv",
		PhotoTags: "photo_tags.csv",
		Likes:     "likes.csv",
		Follows:   "follows.csv",
		Comments:  "comments.csv",
	}
}
