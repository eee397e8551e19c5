package notion

import (
	"context"
	"fmt"
	"net/url"
	"path"
)

const (
	httpMethodGet    = "GET"
	httpMethodPost   = "POST"
	httpMethodPatch  = "PATCH"
	httpMethodDelete = "DELETE"
)

// SearchRequest mirrors the POST /v1/search payload.
//
//nolint:govet // fieldalignment: preserve logical grouping of JSON fields.
type SearchRequest struct {
	Query       string        `json:"query,omitempty"`
	Filter      *SearchFilter `json:"filter,omitempty"`
	Sort        *SearchSort   `json:"sort,omitempty"`
	StartCursor string        `json:"start_cursor,omitempty"`
	PageSize    int           `json:"page_size,omitempty"`
}

// SearchFilter narrows search results to pages or databases.
type SearchFilter struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// SearchSort orders search results, typically by last_edited_time.
type SearchSort struct {
	Direction string `json:"direction"`
	Timestamp string `json:"timestamp"`
}

// Search executes a single page of workspace search.
func (c *Client) Search(ctx context.Context, req SearchRequest) (PageResult[SearchResult], error) {
	var resp PageResult[SearchResult]
	if err := c.do(ctx, httpMethodPost, "search", req, &resp); err != nil {
		return PageResult[SearchResult]{}, err
	}
	return resp, nil
}

// SearchAll drains every page of workspace search results.
func (c *Client) SearchAll(ctx context.Context, req SearchRequest) ([]SearchResult, error) {
	return CollectAll(ctx, req.PageSize, func(ctx context.Context, cursor string, pageSize int) (PageResult[SearchResult], error) {
		req.StartCursor = cursor
		req.PageSize = pageSize
		return c.Search(ctx, req)
	})
}

// QueryDatabaseRequest mirrors the POST /v1/databases/{id}/query payload.
// Filter and Sorts pass through untyped; the server owns their grammar.
//
//nolint:govet // fieldalignment: preserve logical grouping of JSON fields.
type QueryDatabaseRequest struct {
	Filter      any    `json:"filter,omitempty"`
	Sorts       []any  `json:"sorts,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

// QueryDatabase executes a single page of a database query.
func (c *Client) QueryDatabase(
	ctx context.Context,
	databaseID string,
	req QueryDatabaseRequest,
) (PageResult[Page], error) {
	if databaseID == "" {
		return PageResult[Page]{}, fmt.Errorf("databaseID cannot be empty")
	}
	var resp PageResult[Page]
	endpoint := path.Join("databases", databaseID, "query")
	if err := c.do(ctx, httpMethodPost, endpoint, req, &resp); err != nil {
		return PageResult[Page]{}, err
	}
	return resp, nil
}

// QueryDatabaseAll drains every page of a database query.
func (c *Client) QueryDatabaseAll(
	ctx context.Context,
	databaseID string,
	req QueryDatabaseRequest,
) ([]Page, error) {
	return CollectAll(ctx, req.PageSize, func(ctx context.Context, cursor string, pageSize int) (PageResult[Page], error) {
		req.StartCursor = cursor
		req.PageSize = pageSize
		return c.QueryDatabase(ctx, databaseID, req)
	})
}

// RetrievePage fetches a page by ID.
func (c *Client) RetrievePage(ctx context.Context, pageID string) (Page, error) {
	if pageID == "" {
		return Page{}, fmt.Errorf("pageID cannot be empty")
	}
	var page Page
	if err := c.do(ctx, httpMethodGet, path.Join("pages", pageID), nil, &page); err != nil {
		return Page{}, err
	}
	return page, nil
}

// CreatePageRequest represents the body for POST /v1/pages.
//
//nolint:govet // fieldalignment: preserve logical grouping of JSON fields.
type CreatePageRequest struct {
	Parent     Parent         `json:"parent"`
	Properties map[string]any `json:"properties"`
	Children   []Block        `json:"children,omitempty"`
	Icon       *Icon          `json:"icon,omitempty"`
	Cover      *Cover         `json:"cover,omitempty"`
}

// CreatePage creates a page under the supplied parent.
func (c *Client) CreatePage(ctx context.Context, req CreatePageRequest) (Page, error) {
	if len(req.Properties) == 0 {
		return Page{}, fmt.Errorf("page properties cannot be empty")
	}
	var page Page
	if err := c.do(ctx, httpMethodPost, "pages", req, &page); err != nil {
		return Page{}, err
	}
	return page, nil
}

// UpdatePageRequest represents the body for PATCH /v1/pages/{page_id}.
type UpdatePageRequest struct {
	Properties map[string]any `json:"properties,omitempty"`
	Archived   *bool          `json:"archived,omitempty"`
	Icon       *Icon          `json:"icon,omitempty"`
	Cover      *Cover         `json:"cover,omitempty"`
}

// UpdatePage applies changes to a page's properties or metadata.
func (c *Client) UpdatePage(ctx context.Context, pageID string, req UpdatePageRequest) (Page, error) {
	if pageID == "" {
		return Page{}, fmt.Errorf("pageID cannot be empty")
	}
	var page Page
	if err := c.do(ctx, httpMethodPatch, path.Join("pages", pageID), req, &page); err != nil {
		return Page{}, err
	}
	return page, nil
}

// ArchivePage archives (soft-deletes) a page.
func (c *Client) ArchivePage(ctx context.Context, pageID string) (Page, error) {
	archived := true
	return c.UpdatePage(ctx, pageID, UpdatePageRequest{Archived: &archived})
}

// RetrieveDatabase fetches database metadata and schema by ID.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (Database, error) {
	if databaseID == "" {
		return Database{}, fmt.Errorf("databaseID cannot be empty")
	}
	var db Database
	if err := c.do(ctx, httpMethodGet, path.Join("databases", databaseID), nil, &db); err != nil {
		return Database{}, err
	}
	return db, nil
}

// CreateDatabaseRequest represents the body for POST /v1/databases.
//
//nolint:govet // fieldalignment: preserve logical grouping of JSON fields.
type CreateDatabaseRequest struct {
	Parent     Parent         `json:"parent"`
	Title      []RichText     `json:"title"`
	Properties map[string]any `json:"properties"`
	IsInline   bool           `json:"is_inline,omitempty"`
}

// CreateDatabase creates a database under a parent page.
func (c *Client) CreateDatabase(ctx context.Context, req CreateDatabaseRequest) (Database, error) {
	if len(req.Properties) == 0 {
		return Database{}, fmt.Errorf("database properties cannot be empty")
	}
	var db Database
	if err := c.do(ctx, httpMethodPost, "databases", req, &db); err != nil {
		return Database{}, err
	}
	return db, nil
}

// UpdateDatabaseRequest represents the body for PATCH /v1/databases/{id}.
type UpdateDatabaseRequest struct {
	Title      []RichText     `json:"title,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Archived   *bool          `json:"archived,omitempty"`
}

// UpdateDatabase applies changes to a database's title, schema or state.
func (c *Client) UpdateDatabase(
	ctx context.Context,
	databaseID string,
	req UpdateDatabaseRequest,
) (Database, error) {
	if databaseID == "" {
		return Database{}, fmt.Errorf("databaseID cannot be empty")
	}
	var db Database
	if err := c.do(ctx, httpMethodPatch, path.Join("databases", databaseID), req, &db); err != nil {
		return Database{}, err
	}
	return db, nil
}

// RetrieveBlockChildren fetches one page of children for a page or block.
func (c *Client) RetrieveBlockChildren(
	ctx context.Context,
	blockID string,
	startCursor string,
	pageSize int,
) (PageResult[Block], error) {
	if blockID == "" {
		return PageResult[Block]{}, fmt.Errorf("blockID cannot be empty")
	}

	endpoint := path.Join("blocks", blockID, "children")
	if qs := cursorParams(startCursor, pageSize).Encode(); qs != "" {
		endpoint += "?" + qs
	}

	var resp PageResult[Block]
	if err := c.do(ctx, httpMethodGet, endpoint, nil, &resp); err != nil {
		return PageResult[Block]{}, err
	}
	return resp, nil
}

// BlockChildrenAll drains every page of a block's children.
func (c *Client) BlockChildrenAll(ctx context.Context, blockID string, pageSize int) ([]Block, error) {
	return CollectAll(ctx, pageSize, func(ctx context.Context, cursor string, pageSize int) (PageResult[Block], error) {
		return c.RetrieveBlockChildren(ctx, blockID, cursor, pageSize)
	})
}

// AppendBlockChildrenRequest represents the body for PATCH
// /v1/blocks/{block_id}/children.
type AppendBlockChildrenRequest struct {
	Children []Block `json:"children"`
}

// AppendBlockChildren appends blocks to the specified block or page.
func (c *Client) AppendBlockChildren(ctx context.Context, blockID string, blocks []Block) (PageResult[Block], error) {
	if blockID == "" {
		return PageResult[Block]{}, fmt.Errorf("blockID cannot be empty")
	}
	if len(blocks) == 0 {
		return PageResult[Block]{}, fmt.Errorf("no blocks supplied")
	}
	req := AppendBlockChildrenRequest{Children: blocks}
	var resp PageResult[Block]
	if err := c.do(ctx, httpMethodPatch, path.Join("blocks", blockID, "children"), req, &resp); err != nil {
		return PageResult[Block]{}, err
	}
	return resp, nil
}

// RetrieveBlock fetches a single block by ID.
func (c *Client) RetrieveBlock(ctx context.Context, blockID string) (Block, error) {
	if blockID == "" {
		return Block{}, fmt.Errorf("blockID cannot be empty")
	}
	var block Block
	if err := c.do(ctx, httpMethodGet, path.Join("blocks", blockID), nil, &block); err != nil {
		return Block{}, err
	}
	return block, nil
}

// UpdateBlock patches a block's type payload, for example paragraph text or
// a to_do checked state.
func (c *Client) UpdateBlock(ctx context.Context, blockID string, payload map[string]any) (Block, error) {
	if blockID == "" {
		return Block{}, fmt.Errorf("blockID cannot be empty")
	}
	if len(payload) == 0 {
		return Block{}, fmt.Errorf("no block updates supplied")
	}
	var block Block
	if err := c.do(ctx, httpMethodPatch, path.Join("blocks", blockID), payload, &block); err != nil {
		return Block{}, err
	}
	return block, nil
}

// DeleteBlock archives a block.
func (c *Client) DeleteBlock(ctx context.Context, blockID string) error {
	if blockID == "" {
		return fmt.Errorf("blockID cannot be empty")
	}
	return c.do(ctx, httpMethodDelete, path.Join("blocks", blockID), nil, nil)
}

// RetrieveUser fetches a workspace user by ID.
func (c *Client) RetrieveUser(ctx context.Context, userID string) (User, error) {
	if userID == "" {
		return User{}, fmt.Errorf("userID cannot be empty")
	}
	var user User
	if err := c.do(ctx, httpMethodGet, path.Join("users", userID), nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Me returns the bot user the integration token belongs to.
func (c *Client) Me(ctx context.Context) (User, error) {
	var user User
	if err := c.do(ctx, httpMethodGet, "users/me", nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// ListUsers fetches one page of workspace users.
func (c *Client) ListUsers(ctx context.Context, startCursor string, pageSize int) (PageResult[User], error) {
	endpoint := "users"
	if qs := cursorParams(startCursor, pageSize).Encode(); qs != "" {
		endpoint += "?" + qs
	}

	var resp PageResult[User]
	if err := c.do(ctx, httpMethodGet, endpoint, nil, &resp); err != nil {
		return PageResult[User]{}, err
	}
	return resp, nil
}

// ListAllUsers drains every page of the workspace user listing.
func (c *Client) ListAllUsers(ctx context.Context, pageSize int) ([]User, error) {
	return CollectAll(ctx, pageSize, func(ctx context.Context, cursor string, pageSize int) (PageResult[User], error) {
		return c.ListUsers(ctx, cursor, pageSize)
	})
}

// ListComments fetches one page of comments on a block or page.
func (c *Client) ListComments(
	ctx context.Context,
	blockID string,
	startCursor string,
	pageSize int,
) (PageResult[Comment], error) {
	if blockID == "" {
		return PageResult[Comment]{}, fmt.Errorf("blockID cannot be empty")
	}

	params := cursorParams(startCursor, pageSize)
	params.Set("block_id", blockID)

	var resp PageResult[Comment]
	if err := c.do(ctx, httpMethodGet, "comments?"+params.Encode(), nil, &resp); err != nil {
		return PageResult[Comment]{}, err
	}
	return resp, nil
}

// ListAllComments drains every page of a block's comments.
func (c *Client) ListAllComments(ctx context.Context, blockID string, pageSize int) ([]Comment, error) {
	return CollectAll(ctx, pageSize, func(ctx context.Context, cursor string, pageSize int) (PageResult[Comment], error) {
		return c.ListComments(ctx, blockID, cursor, pageSize)
	})
}

// CreateCommentRequest represents the body for POST /v1/comments.
type CreateCommentRequest struct {
	Parent   Parent     `json:"parent"`
	RichText []RichText `json:"rich_text"`
}

// CreateComment adds a comment to a page.
func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) (Comment, error) {
	if len(req.RichText) == 0 {
		return Comment{}, fmt.Errorf("comment text cannot be empty")
	}
	var comment Comment
	if err := c.do(ctx, httpMethodPost, "comments", req, &comment); err != nil {
		return Comment{}, err
	}
	return comment, nil
}

func cursorParams(startCursor string, pageSize int) url.Values {
	params := url.Values{}
	if startCursor != "" {
		params.Set("start_cursor", startCursor)
	}
	if pageSize > 0 {
		params.Set("page_size", fmt.Sprint(pageSize))
	}
	return params
}
