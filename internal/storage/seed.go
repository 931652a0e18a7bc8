package storage

import "DocVerifier_BluestockProject/internal/models"

const seedOrganization = "Bluestock Fintech"

// SeedRecords returns a fresh copy of the documents loaded at startup.
func SeedRecords() []models.Record {
	return []models.Record{
		{
			ID:            "BFT11383",
			SubjectName:   "Prashant Singh",
			Organization:  seedOrganization,
			Role:          "SDE Intern(remote)",
			IssueDate:     "2025-07-30",
			DurationLabel: "1 Jun 2025 - 30 Jul 2025",
			Status:        models.StatusVerified,
			Remark:        "ok",
		},
		{
			ID:            "BFT11384",
			SubjectName:   "Kaushal",
			Organization:  seedOrganization,
			Role:          "Software Development Engineer",
			IssueDate:     "2024-01-15",
			DurationLabel: "1 Jan 2024 - 15 Jan 2024",
			Status:        models.StatusVerified,
			Remark:        "verified",
		},
		{
			ID:            "BFT11385",
			SubjectName:   "Kaushal",
			Organization:  seedOrganization,
			Role:          "Software Development Engineer",
			IssueDate:     "2024-01-15",
			DurationLabel: "1 Jan 2024 - 15 Jan 2024",
			Status:        models.StatusVerified,
			Remark:        "verified",
		},
		{
			ID:            "BFT11386",
			SubjectName:   "Kaushal",
			Organization:  seedOrganization,
			Role:          "Software Development Engineer",
			IssueDate:     "2024-01-15",
			DurationLabel: "1 Jan 2024 - 15 Jan 2024",
			Status:        models.StatusVerified,
			Remark:        "verified",
		},
		{
			ID:            "BFT11387",
			SubjectName:   "John Doe",
			Organization:  seedOrganization,
			Role:          "Data Analyst Intern",
			IssueDate:     "2024-01-20",
			DurationLabel: "1 Jan 2024 - 20 Jan 2024",
			Status:        models.StatusVerified,
			Remark:        "verified",
		},
	}
}
