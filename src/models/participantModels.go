package models

type ParticipantModel struct {
	Id             int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName      string  `json:"first_name" gorm:"column:first_name;type:text;not null"`
	LastName       string  `json:"last_name" gorm:"column:last_name;type:text;not null"`
	GuardianName   *string `json:"guardian_name" gorm:"column:guardian_name;type:text"`
	AddressLine    *string `json:"address_line" gorm:"column:address_line;type:text"`
	City           *string `json:"city" gorm:"column:city;type:text"`
	PostalCode     *string `json:"postal_code" gorm:"column:postal_code;type:text"`
	Phone          *string `json:"phone" gorm:"column:phone;type:text"`
	Email          *string `json:"email" gorm:"column:email;type:text"`
	Sex            *string `json:"sex" gorm:"column:sex;type:text"`
	Age            *int    `json:"age" gorm:"column:age"`
	MedicalHistory *string `json:"medical_history" gorm:"column:medical_history;type:text"`
}

func (ParticipantModel) TableName() string {
	return "participants"
}
