package dto

import "soulful-home-be/internal/entity"

type RecordSelectionRequest struct {
	QuestionId string      `json:"questionId" validate:"required"`
	OptionId   string      `json:"optionId" validate:"required"`
	Tags       entity.Tags `json:"tags"`
}

type RecordSelectionResponse struct {
	Success bool `json:"success"`
}
