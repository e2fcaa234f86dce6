package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is the normalized form of untrusted page/limit query inputs.
type PageRequest struct {
	Page  uint64 `json:"page"`
	Limit uint64 `json:"limit"`
}

// Pagination is the response metadata attached to every list payload.
type Pagination struct {
	Total      uint64 `json:"total"`
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
	TotalPages uint64 `json:"total_pages"`
}

// NormalizePagination clamps raw page/limit values into a safe range.
// Non-numeric or missing inputs fall back to the defaults; numeric inputs
// are clamped, page to at least 1 and limit to [1, MaxLimit]. The result is
// a fixed point: normalizing an already-normalized pair returns it unchanged.
func NormalizePagination(rawPage, rawLimit string) PageRequest {
	page := uint64(1)
	if p, err := strconv.ParseInt(rawPage, 10, 64); err == nil && p > 1 {
		page = uint64(p)
	}

	limit := uint64(DefaultLimit)
	if l, err := strconv.ParseInt(rawLimit, 10, 64); err == nil {
		switch {
		case l < 1:
			limit = 1
		case l > MaxLimit:
			limit = MaxLimit
		default:
			limit = uint64(l)
		}
	}

	return PageRequest{Page: page, Limit: limit}
}

// ParsePaginationParams is the url.Values convenience over NormalizePagination.
func ParsePaginationParams(values url.Values) PageRequest {
	return NormalizePagination(values.Get("page"), values.Get("limit"))
}

// Offset converts a 1-indexed page into a row offset. Page is never below 1
// after normalization, so the result is never negative.
func (p PageRequest) Offset() uint64 {
	return (p.Page - 1) * p.Limit
}

// DescribePagination computes the metadata for a list response.
// TotalPages is ceil(total/limit) and zero when total is zero.
func DescribePagination(total uint64, req PageRequest) Pagination {
	var totalPages uint64
	if total > 0 && req.Limit > 0 {
		totalPages = (total + req.Limit - 1) / req.Limit
	}
	return Pagination{
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
	}
}
