package model

import "time"

// DemographicData captures the respondent's background information.
// Gender, ethnicity, jaundice and family history use the integer codes
// from the screening dataset (gender: 0 male / 1 female, booleans 0/1).
type DemographicData struct {
	Name          string `json:"name" bson:"name"`
	Age           int    `json:"age" bson:"age"`
	Gender        int    `json:"gender" bson:"gender"`
	Ethnicity     int    `json:"ethnicity" bson:"ethnicity"`
	Country       string `json:"country" bson:"country"`
	Jaundice      int    `json:"jaundice" bson:"jaundice"`
	FamilyHistory int    `json:"family_history" bson:"family_history"`
	Respondent    string `json:"respondent" bson:"respondent"`
}

// BehavioralData holds the ten AQ-10 answers, each 0 or 1. The field
// order is the feature-vector order and must not change.
type BehavioralData struct {
	A1Score  int `json:"a1_score" bson:"a1_score"`
	A2Score  int `json:"a2_score" bson:"a2_score"`
	A3Score  int `json:"a3_score" bson:"a3_score"`
	A4Score  int `json:"a4_score" bson:"a4_score"`
	A5Score  int `json:"a5_score" bson:"a5_score"`
	A6Score  int `json:"a6_score" bson:"a6_score"`
	A7Score  int `json:"a7_score" bson:"a7_score"`
	A8Score  int `json:"a8_score" bson:"a8_score"`
	A9Score  int `json:"a9_score" bson:"a9_score"`
	A10Score int `json:"a10_score" bson:"a10_score"`
}

// Scores returns the answers in question order.
func (b BehavioralData) Scores() [10]int {
	return [10]int{
		b.A1Score, b.A2Score, b.A3Score, b.A4Score, b.A5Score,
		b.A6Score, b.A7Score, b.A8Score, b.A9Score, b.A10Score,
	}
}

// AssessmentRequest is the request body for creating an assessment.
type AssessmentRequest struct {
	Demographic   *DemographicData `json:"demographic"`
	Behavioral    *BehavioralData  `json:"behavioral"`
	ImageFilename string           `json:"image_filename,omitempty"`
}

// Assessment is the immutable record of one screening submission.
// Created once after a successful prediction, never mutated.
type Assessment struct {
	ID            string          `json:"id" bson:"id"`
	Timestamp     time.Time       `json:"timestamp" bson:"timestamp"`
	Demographic   DemographicData `json:"demographic" bson:"demographic"`
	Behavioral    BehavioralData  `json:"behavioral" bson:"behavioral"`
	ImageFilename string          `json:"image_filename,omitempty" bson:"image_filename,omitempty"`
	Prediction    int             `json:"prediction" bson:"prediction"`
	Probability   float64         `json:"probability" bson:"probability"`
	Confidence    float64         `json:"confidence" bson:"confidence"`
	RiskLevel     string          `json:"risk_level" bson:"risk_level"`
}
