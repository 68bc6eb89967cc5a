package catalog

import (
	"sort"
	"strings"

	"github.com/tahiry-dev/wildlife-atlas/models"
)

// The five fixed region buckets used by the read-only dataset endpoints.
// This is a constant enumeration, deliberately independent from the
// admin-managed regions table in the relational store.
var buckets = []models.RegionBucket{
	{ID: 1, Name: "Diana", Description: "Northern region of Madagascar"},
	{ID: 2, Name: "Sava", Description: "Northeastern region of Madagascar"},
	{ID: 3, Name: "Analamanga", Description: "Central region containing the capital Antananarivo"},
	{ID: 4, Name: "Atsinanana", Description: "Eastern coastal region"},
	{ID: 5, Name: "Menabe", Description: "Western coastal region"},
}

// bucketKeywords maps each bucket ID to the substrings that claim a record
// for it. Matching is case-insensitive, order-independent, and not mutually
// exclusive: every keyword that matches contributes its bucket.
var bucketKeywords = map[int][]string{
	1: {"northern", "north"},
	2: {"northeastern", "ne "},
	3: {"central"},
	4: {"eastern"},
	5: {"western"},
}

// everywhereKeyword marks a record as present in every bucket regardless of
// any other match.
const everywhereKeyword = "throughout"

// Bucket returns the fixed region bucket with the given ID.
// The second return value is false for unknown IDs.
func Bucket(id int) (models.RegionBucket, bool) {
	for _, b := range buckets {
		if b.ID == id {
			return b, true
		}
	}
	return models.RegionBucket{}, false
}

// Buckets returns the full fixed bucket enumeration in ID order.
func Buckets() []models.RegionBucket {
	out := make([]models.RegionBucket, len(buckets))
	copy(out, buckets)
	return out
}

// classifyRegion resolves a record's free-text region field to the set of
// bucket IDs it belongs to, returned in ascending order.
//
// A record that matches no keyword, or whose text contains "throughout",
// is assigned to all five buckets.
func classifyRegion(region string) []int {
	text := strings.ToLower(region)

	matched := make(map[int]struct{})
	for id, keywords := range bucketKeywords {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				matched[id] = struct{}{}
				break
			}
		}
	}

	if len(matched) == 0 || strings.Contains(text, everywhereKeyword) {
		ids := make([]int, 0, len(buckets))
		for _, b := range buckets {
			ids = append(ids, b.ID)
		}
		return ids
	}

	ids := make([]int, 0, len(matched))
	for id := range matched {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
