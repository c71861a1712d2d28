package repository

import (
	"time"

	"gorm.io/gorm"

	"whisperboard/internal/model"
)

type DoubtRepository interface {
	Create(doubt *model.Doubt) error
	FindByID(id uint) (*model.Doubt, error)
	// FindAll returns every doubt, newest first. A non-nil teacher restricts
	// the scan to exact matches on the teacher column.
	FindAll(teacher *string) ([]model.Doubt, error)
	// Answer sets answer/status/answeredAt in one conditional update guarded
	// on the Pending status. It reports whether the update won; false means
	// the doubt was already answered by the time the write reached the store.
	Answer(id uint, answer string, answeredAt time.Time) (bool, error)
	CountByStatus() (total, pending, answered int64, err error)
}

type doubtRepository struct {
	db *gorm.DB
}

func NewDoubtRepository(db *gorm.DB) DoubtRepository {
	return &doubtRepository{db: db}
}

func (r *doubtRepository) Create(doubt *model.Doubt) error {
	return r.db.Create(doubt).Error
}

func (r *doubtRepository) FindByID(id uint) (*model.Doubt, error) {
	var doubt model.Doubt
	if err := r.db.First(&doubt, id).Error; err != nil {
		return nil, err
	}
	return &doubt, nil
}

func (r *doubtRepository) FindAll(teacher *string) ([]model.Doubt, error) {
	var doubts []model.Doubt
	query := r.db.Order("created_at desc")
	if teacher != nil {
		query = query.Where("teacher = ?", *teacher)
	}
	if err := query.Find(&doubts).Error; err != nil {
		return nil, err
	}
	return doubts, nil
}

func (r *doubtRepository) Answer(id uint, answer string, answeredAt time.Time) (bool, error) {
	res := r.db.Model(&model.Doubt{}).
		Where("id = ? AND status = ?", id, model.StatusPending).
		Updates(map[string]any{
			"answer":      answer,
			"status":      model.StatusAnswered,
			"answered_at": answeredAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *doubtRepository) CountByStatus() (total, pending, answered int64, err error) {
	if err = r.db.Model(&model.Doubt{}).Count(&total).Error; err != nil {
		return 0, 0, 0, err
	}

	type statusCount struct {
		Status string
		N      int64
	}
	var rows []statusCount
	err = r.db.Model(&model.Doubt{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, 0, err
	}

	// total is authoritative; a record with an unrecognized status counts
	// toward total but toward neither tally.
	for _, row := range rows {
		switch row.Status {
		case model.StatusPending:
			pending = row.N
		case model.StatusAnswered:
			answered = row.N
		}
	}
	return total, pending, answered, nil
}
