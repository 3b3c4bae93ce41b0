package models

// Skill is the normalized skill vocabulary. SeekerSkill links a seeker to
// it with a proficiency; used to decorate company applicant listings.
type Skill struct {
	BaseModel
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Category string `json:"category,omitempty"`
}

type SeekerSkill struct {
	BaseModel
	SeekerID    string `gorm:"type:uuid;not null;uniqueIndex:idx_seeker_skill" json:"seekerId"`
	SkillID     string `gorm:"type:uuid;not null;uniqueIndex:idx_seeker_skill" json:"skillId"`
	Proficiency string `gorm:"type:varchar(20)" json:"proficiency,omitempty"`

	Skill *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}
