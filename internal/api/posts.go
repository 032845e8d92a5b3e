package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListPosts returns every post, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/posts", "", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPostsPaginated returns one page of posts matching filter.
func (c *Client) ListPostsPaginated(ctx context.Context, filter PostFilter) (*PaginatedPosts, error) {
	params := url.Values{}
	if filter.Page > 0 {
		params.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		params.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.StartDate != "" {
		params.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		params.Set("endDate", filter.EndDate)
	}
	if filter.AuthorID != "" {
		params.Set("authorId", filter.AuthorID)
	}

	path := "/posts/paginated"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page PaginatedPosts
	if err := c.do(ctx, http.MethodGet, path, "", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, "/posts/"+url.PathEscape(id), "", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, "/posts/slug/"+url.PathEscape(slug), "", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreatePost(ctx context.Context, token string, req CreatePostRequest) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPost, "/posts", token, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UpdatePost(ctx context.Context, token, id string, req UpdatePostRequest) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPatch, "/posts/"+url.PathEscape(id), token, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+url.PathEscape(id), token, nil, nil)
}
