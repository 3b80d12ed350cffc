package wordy

import (
	"context"
	"strconv"
)

// The base/* endpoints describe the service itself and are called unsigned.

// BaseInfo returns general information about the Wordy service.
func (c *Client) BaseInfo(ctx context.Context) (*BaseResult, error) {
	return call[BaseResult](ctx, c, "base/info", "/base/info/", nil, true)
}

// BaseEstimate returns Wordy's price and delivery estimate for wordCount words.
func (c *Client) BaseEstimate(ctx context.Context, wordCount int) (*EstimateResult, error) {
	path := "/base/estimate/word_count/" + strconv.Itoa(wordCount)
	return call[EstimateResult](ctx, c, "base/estimate", path, nil, true)
}

// BaseStatistics returns public service statistics.
func (c *Client) BaseStatistics(ctx context.Context) (*StatisticsResult, error) {
	return call[StatisticsResult](ctx, c, "base/statistics", "/base/statistics/", nil, true)
}

// BaseTestimonial returns a customer testimonial.
func (c *Client) BaseTestimonial(ctx context.Context) (*TestimonialResult, error) {
	return call[TestimonialResult](ctx, c, "base/testimonial", "/base/testimonial/", nil, true)
}
