package dataset

// Validation keeps only records whose identity fields are present. Date
// fields are passed through verbatim: a bad date must reach the aggregation
// layer so date-bounded computations can exclude that record, rather than
// being silently rewritten here.

func validateUser(r row) (User, bool) {
	if r["id"] == "" || r["username"] == "" {
		return User{}, false
	}
	return User{
		ID:        r["id"],
		Username:  r["username"],
		CreatedAt: r["created_at"],
	}, true
}

func validateTag(r row) (Tag, bool) {
	if r["id"] == "" || r["tag_name"] == "" {
		return Tag{}, false
	}
	return Tag{
		ID:        r["id"],
		TagName:   r["tag_name"],
		CreatedAt: r["created_at"],
	}, true
}

func validatePhoto(r row) (Photo, bool) {
	if r["id"] == "" || r["user_id"] == "" {
		return Photo{}, false
	}
	return Photo{
		ID:         r["id"],
		UserID:     r["user_id"],
		ImageURL:   r["image_url"],
		CreatedDat: r["created_dat"],
	}, true
}

func validatePhotoTag(r row) (PhotoTag, bool) {
	if r["photo_id"] == "" || r["tag_id"] == "" {
		return PhotoTag{}, false
	}
	return PhotoTag{
		PhotoID: r["photo_id"],
		TagID:   r["tag_id"],
	}, true
}

func validateLike(r row) (Like, bool) {
	if r["user_id"] == "" || r["photo_id"] == "" {
		return Like{}, false
	}
	return Like{
		UserID:    r["user_id"],
		PhotoID:   r["photo_id"],
		CreatedAt: r["created_at"],
	}, true
}

func validateFollow(r row) (Follow, bool) {
	if r["follower_id"] == "" || r["followee_id"] == "" {
		return Follow{}, false
	}
	return Follow{
		FollowerID: r["follower_id"],
		FolloweeID: r["followee_id"],
		CreatedAt:  r["created_at"],
	}, true
}

func validateComment(r row) (Comment, bool) {
	if r["id"] == "" || r["user_id"] == "" || r["photo_id"] == "" {
		return Comment{}, false
	}
	return Comment{
		ID:          r["id"],
		UserID:      r["user_id"],
		PhotoID:     r["photo_id"],
		CommentText: r["comment_text"],
		CreatedAt:   r["created_at"],
	}, true
}
