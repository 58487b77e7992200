package graph

// PageInfo is the page-level snapshot (page_info.json).
type PageInfo struct {
	Name              string  `json:"name,omitempty"`
	FanCount          int     `json:"fan_count,omitempty"`
	FollowersCount    int     `json:"followers_count,omitempty"`
	TalkingAboutCount int     `json:"talking_about_count,omitempty"`
	OverallStarRating float64 `json:"overall_star_rating,omitempty"`
	RatingCount       int     `json:"rating_count,omitempty"`
	FetchedAt         string  `json:"fetched_at,omitempty"`
}

// APIPost is one processed post from the Graph API.
type APIPost struct {
	ID           string `json:"id"`
	Message      string `json:"message"`
	CreatedTime  string `json:"created_time"`
	PermalinkURL string `json:"permalink_url"`
	PostType     string `json:"post_type"`

	Reactions int `json:"reactions"`
	Comments  int `json:"comments"`
	Shares    int `json:"shares"`

	Like  int `json:"like"`
	Love  int `json:"love"`
	Haha  int `json:"haha"`
	Wow   int `json:"wow"`
	Sad   int `json:"sad"`
	Angry int `json:"angry"`

	Engagement int `json:"engagement"`
}

// PostsSnapshot is the recent-posts snapshot (posts.json).
type PostsSnapshot struct {
	FetchedAt  string    `json:"fetched_at"`
	TotalPosts int       `json:"total_posts"`
	Posts      []APIPost `json:"posts"`
}

// Video is one video from the Graph API.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	CreatedTime  string `json:"created_time"`
	Length       float64 `json:"length"`
	Views        int    `json:"views"`
	PermalinkURL string `json:"permalink_url"`
}

// VideosSnapshot is the videos snapshot (videos.json).
type VideosSnapshot struct {
	FetchedAt   string  `json:"fetched_at"`
	TotalVideos int     `json:"total_videos"`
	TotalViews  int     `json:"total_views"`
	Videos      []Video `json:"videos"`
}

// Raw Graph API response shapes.

type summaryCount struct {
	Summary struct {
		TotalCount int `json:"total_count"`
	} `json:"summary"`
}

type rawPost struct {
	ID           string `json:"id"`
	Message      string `json:"message"`
	CreatedTime  string `json:"created_time"`
	PermalinkURL string `json:"permalink_url"`
	StatusType   string `json:"status_type"`
	Shares       *struct {
		Count int `json:"count"`
	} `json:"shares"`
	Reactions *summaryCount `json:"reactions"`
	Comments  *summaryCount `json:"comments"`
	Like      *summaryCount `json:"like"`
	Love      *summaryCount `json:"love"`
	Haha      *summaryCount `json:"haha"`
	Wow       *summaryCount `json:"wow"`
	Sad       *summaryCount `json:"sad"`
	Angry     *summaryCount `json:"angry"`
}

type rawPostList struct {
	Data  []rawPost `json:"data"`
	Error *apiError `json:"error"`
}

type rawVideoList struct {
	Data  []Video   `json:"data"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}
