package domain

import "errors"

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrInvalidLesson    = errors.New("invalid lesson")
	ErrLessonNotFound   = errors.New("lesson not found")
)
