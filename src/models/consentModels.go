package models

type ConsentModel struct {
	Id            int64             `json:"id" gorm:"primaryKey;autoIncrement"`
	ParticipantId int64             `json:"participant_id" gorm:"column:participant_id;not null;index"`
	Participant   *ParticipantModel `json:"-" gorm:"foreignKey:ParticipantId;references:Id;constraint:OnDelete:CASCADE"`

	// Services
	Physio       bool `json:"physio" gorm:"column:physio;not null"`
	Ergo         bool `json:"ergo" gorm:"column:ergo;not null"`
	Logo         bool `json:"logo" gorm:"column:logo;not null"`
	Diet         bool `json:"diet" gorm:"column:diet;not null"`
	GaitAnalysis bool `json:"gait_analysis" gorm:"column:gait_analysis;not null"`
	Counseling   bool `json:"counseling" gorm:"column:counseling;not null"`

	// Consents
	VideoCapture          bool `json:"video_capture" gorm:"column:video_capture;not null"`
	DataProcessing        bool `json:"data_processing" gorm:"column:data_processing;not null"`
	DataTransferOutsideEU bool `json:"data_transfer_outside_eu" gorm:"column:data_transfer_outside_eu;not null"`
	BiomedicalCapture     bool `json:"biomedical_capture" gorm:"column:biomedical_capture;not null"`

	SignedAt Date `json:"signed_at" gorm:"column:signed_at;not null"`
}

func (ConsentModel) TableName() string {
	return "consents"
}
