package comment

import (
	domain "fileshare-api/internal/domain/comment"
)

func ToResponseComment(cDomain *domain.Comment) Comment {
	var c = Comment{
		ID:        uint64(cDomain.ID),
		FileID:    uint64(cDomain.FileID),
		UserID:    uint64(cDomain.UserID),
		Content:   cDomain.Content,
		CreatedAt: cDomain.CreatedAt,
	}

	return c
}

func ToResponseCommentWithAuthor(caDomain *domain.CommentWithAuthor) Comment {
	c := ToResponseComment(caDomain.Comment)
	if caDomain.Author != nil {
		c.Author = &Author{
			ID:   uint64(caDomain.Author.ID),
			Name: caDomain.Author.Name,
		}
	}

	return c
}

func ToResponseCommentsWithAuthor(caDomains domain.CommentsWithAuthor) Comments {
	cs := make(Comments, len(caDomains))
	for idx, ca := range caDomains {
		cs[idx] = ToResponseCommentWithAuthor(ca)
	}

	return cs
}
