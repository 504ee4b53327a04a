package codecommit

import (
	"context"
	"maps"
	"slices"

	"github.com/bravo68web/codecommit/pkg/codecommit/types"
)

// ListTagsForResourceRequest is the input of ListTagsForResource.
type ListTagsForResourceRequest struct {
	ResourceArn *string `json:"resourceArn,omitempty" validate:"required"`
	NextToken   *string `json:"nextToken,omitempty"`
}

func (r ListTagsForResourceRequest) String() string { return types.Stringify(r) }

type ListTagsForResourceResult struct {
	Tags      map[string]string `json:"tags,omitempty"`
	NextToken *string           `json:"nextToken,omitempty"`
}

func (r ListTagsForResourceResult) String() string { return types.Stringify(r) }

// ListTagsForResource lists the tags of a resource.
func (c *Client) ListTagsForResource(ctx context.Context, params *ListTagsForResourceRequest) (*ListTagsForResourceResult, error) {
	return call[ListTagsForResourceResult](ctx, c, "ListTagsForResource", params)
}

// TagResourceRequest is the input of TagResource.
type TagResourceRequest struct {
	ResourceArn *string           `json:"resourceArn,omitempty" validate:"required"`
	Tags        map[string]string `json:"tags,omitempty" validate:"required,dive,keys,min=1,max=128,endkeys,max=256"`
}

func (r TagResourceRequest) String() string { return types.Stringify(r) }

// WithTags sets Tags to a copy of tags.
func (r *TagResourceRequest) WithTags(tags map[string]string) *TagResourceRequest {
	r.Tags = maps.Clone(tags)
	return r
}

// TagResource adds or overwrites tags on a resource.
func (c *Client) TagResource(ctx context.Context, params *TagResourceRequest) error {
	return callNoResult(ctx, c, "TagResource", params)
}

// UntagResourceRequest is the input of UntagResource.
type UntagResourceRequest struct {
	ResourceArn *string  `json:"resourceArn,omitempty" validate:"required"`
	TagKeys     []string `json:"tagKeys,omitempty" validate:"required,dive,min=1,max=128"`
}

func (r UntagResourceRequest) String() string { return types.Stringify(r) }

// WithTagKeys sets TagKeys to a copy of tagKeys.
func (r *UntagResourceRequest) WithTagKeys(tagKeys ...string) *UntagResourceRequest {
	r.TagKeys = slices.Clone(tagKeys)
	return r
}

// UntagResource removes tags from a resource.
func (c *Client) UntagResource(ctx context.Context, params *UntagResourceRequest) error {
	return callNoResult(ctx, c, "UntagResource", params)
}
