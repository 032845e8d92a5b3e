package api

// User is the identity record returned by the StudyBlog backend.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Avatar        string `json:"avatar,omitempty"`
	Bio           string `json:"bio,omitempty"`
	Github        string `json:"github,omitempty"`
	Linkedin      string `json:"linkedin,omitempty"`
	Twitter       string `json:"twitter,omitempty"`
	Instagram     string `json:"instagram,omitempty"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"emailVerified,omitempty"`
	Provider      string `json:"provider,omitempty"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// Post is a blog post as served by the backend.
type Post struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Image     string `json:"image,omitempty"`
	ImagePath string `json:"imagePath,omitempty"`
	AuthorID  string `json:"authorId"`
	Author    User   `json:"author"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// PaginatedPosts is the response shape of GET /posts/paginated.
type PaginatedPosts struct {
	Posts      []Post `json:"posts"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}

// PostFilter holds the query parameters accepted by GET /posts/paginated.
type PostFilter struct {
	Page      int
	Limit     int
	Search    string
	StartDate string
	EndDate   string
	AuthorID  string
}

// AuthResponse is returned by POST /auth/login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Image     string `json:"image,omitempty"`
	ImagePath string `json:"imagePath,omitempty"`
}

// UpdatePostRequest is the body of PATCH /posts/{id}. Empty fields are omitted
// so the backend treats them as unchanged.
type UpdatePostRequest struct {
	Slug      string `json:"slug,omitempty"`
	Title     string `json:"title,omitempty"`
	Text      string `json:"text,omitempty"`
	Image     string `json:"image,omitempty"`
	ImagePath string `json:"imagePath,omitempty"`
}

// UpdateProfileRequest is the body of PATCH /auth/profile.
type UpdateProfileRequest struct {
	Name      string `json:"name,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Github    string `json:"github,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// UploadResponse is returned by POST /uploads/image.
type UploadResponse struct {
	Message      string `json:"message"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

// ack is the generic message envelope most mutating endpoints respond with.
type ack struct {
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
	Verified bool   `json:"verified,omitempty"`
	User     *User  `json:"user,omitempty"`
}
