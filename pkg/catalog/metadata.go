package catalog

import (
	"time"

	"github.com/deploymenttheory/go-xattr/pkg/metadata"
)

// Search metadata keys.
const (
	CreatorKey             = "kMDItemCreator"
	AuthorsKey             = "kMDItemAuthors"
	KeywordsKey            = "kMDItemKeywords"
	StarRatingKey          = "kMDItemStarRating"
	WhereFromsKey          = "kMDItemWhereFroms"
	DownloadedDateKey      = "kMDItemDownloadedDate"
	FinderCommentKey       = "kMDItemFinderComment"
	UserTagsKey            = "_kMDItemUserTags"
	TitleKey               = "kMDItemTitle"
	DescriptionKey         = "kMDItemDescription"
	CopyrightKey           = "kMDItemCopyright"
	HeadlineKey            = "kMDItemHeadline"
	ContentCreationDateKey = "kMDItemContentCreationDate"
	DueDateKey             = "kMDItemDueDate"
	IsScreenCaptureKey     = "kMDItemIsScreenCapture"
)

var (
	Creator             = metadata.StringName(CreatorKey)
	Authors             = metadata.StructuredName[[]string](AuthorsKey)
	Keywords            = metadata.StructuredName[[]string](KeywordsKey)
	StarRating          = metadata.StructuredName[int](StarRatingKey)
	WhereFroms          = metadata.StructuredName[[]string](WhereFromsKey)
	DownloadedDate      = metadata.StructuredName[[]time.Time](DownloadedDateKey)
	FinderComment       = metadata.StringName(FinderCommentKey)
	Title               = metadata.StringName(TitleKey)
	Description         = metadata.StringName(DescriptionKey)
	Copyright           = metadata.StringName(CopyrightKey)
	Headline            = metadata.StringName(HeadlineKey)
	ContentCreationDate = metadata.StructuredName[time.Time](ContentCreationDateKey)
	DueDate             = metadata.StructuredName[time.Time](DueDateKey)
	IsScreenCapture     = metadata.StructuredNameWithDefault(IsScreenCaptureKey, false)

	// UserTags holds Finder tags as "name\ncolor" entries and reads as an
	// empty list while unset.
	UserTags = metadata.StructuredNameWithDefault(UserTagsKey, []string{})
)
