package comment

import (
	domain "fileshare-api/internal/domain/comment"
	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
)

func fromDBModel(model *Comment) *domain.Comment {
	var c = &domain.Comment{
		ID:      domain.ID(model.ID),
		FileID:  file.ID(model.FileID),
		UserID:  user.ID(model.UserID),
		Content: model.Content,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return c
}

func fromDBModelWithAuthor(model *CommentWithAuthor) *domain.CommentWithAuthor {
	ca := &domain.CommentWithAuthor{
		Comment: fromDBModel(model.Comment),
	}
	if model.Author != nil && model.Author.ID != nil {
		ca.Author = &domain.Author{
			ID:   user.ID(*model.Author.ID),
			Name: model.Author.Name,
		}
	}

	return ca
}

func fromDBModelsWithAuthor(models *CommentsWithAuthor) domain.CommentsWithAuthor {
	cas := make(domain.CommentsWithAuthor, len(*models))
	for idx, c := range *models {
		cas[idx] = fromDBModelWithAuthor(c)
	}

	return cas
}
