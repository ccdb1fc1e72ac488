package models

import "time"

// Bootstrap data used when a collection's persisted slot is absent. Each
// function returns a fresh value so callers can mutate freely.

func studentRole(r StudentRole) *StudentRole { return &r }
func strPtr(s string) *string                { return &s }

func SeedCourses() []Course {
	return []Course{
		{ID: "course1", Name: "Strength of Materials", Code: "CVE-305", TeacherID: "teacher1"},
		{ID: "course2", Name: "Calculus I", Code: "MATH-201", TeacherID: "teacher1"},
		{ID: "course3", Name: "Introduction to Biology", Code: "BIO-101", TeacherID: "teacher1"},
	}
}

func SeedUsers() []User {
	return []User{
		{
			ID: "teacher1", Name: "Dr. Aliu Adekunle", Role: RoleTeacher,
			Email: "a.adekunle@faculty.edu", StudentNumber: "N/A", Phone: "999-888-7777",
			Surname: "Adekunle", FirstName: "Aliu",
			ProfilePictureURL: strPtr("https://i.pravatar.cc/150?u=teacher1"),
			CourseIDs:         []string{"course1", "course2", "course3"},
			Username:          "Adekunle", Password: "Opemipo@1",
		},
		{
			ID: "student1", Name: "Alice Johnson", Role: RoleStudent,
			StudentRole: studentRole(StudentGovernor),
			Email:       "alice.j@edu.com", StudentNumber: "S001", Phone: "111-222-3333",
			Surname: "Johnson", FirstName: "Alice",
			ProfilePictureURL: strPtr("https://i.pravatar.cc/150?u=student1"),
			CourseIDs:         []string{"course2", "course3"},
			Username:          "alice.j", Password: "password123",
		},
		{
			ID: "student2", Name: "Bob Williams", Role: RoleStudent,
			StudentRole: studentRole(StudentRegular),
			Email:       "bob.w@edu.com", StudentNumber: "S002", Phone: "222-333-4444",
			Surname: "Williams", FirstName: "Bob",
			ProfilePictureURL: strPtr("https://i.pravatar.cc/150?u=student2"),
			CourseIDs:         []string{"course1"},
			Username:          "bob.w", Password: "password123",
		},
		{
			ID: "student3", Name: "Charlie Brown", Role: RoleStudent,
			StudentRole: studentRole(StudentRegular),
			Email:       "charlie.b@edu.com", StudentNumber: "S003", Phone: "333-444-5555",
			Surname: "Brown", FirstName: "Charlie",
			ProfilePictureURL: strPtr("https://i.pravatar.cc/150?u=student3"),
			CourseIDs:         []string{"course1", "course2"},
			Username:          "charlie.b", Password: "password123",
		},
	}
}

func SeedAssignments(now time.Time) []Assignment {
	return []Assignment{
		{
			ID: "assign1", CourseID: "course1",
			Title:       "History of Ancient Rome",
			Description: "Write a 1000-word essay on the fall of the Roman Empire.",
			DueDate:     NewTimestamp(now.AddDate(0, 0, 7)),
			Submissions: []Submission{
				{
					StudentID: "student2", StudentName: "Bob Williams",
					SubmittedAt: NewTimestamp(now.AddDate(0, 0, -1)),
					Grade:       strPtr("B+"),
					Feedback:    strPtr("Good work, but could use more primary sources."),
				},
			},
		},
		{
			ID: "assign2", CourseID: "course2",
			Title:       "Calculus I: Problem Set 3",
			Description: "Complete the exercises on pages 45-47 of the textbook.",
			DueDate:     NewTimestamp(now.AddDate(0, 0, 3)),
			Submissions: []Submission{
				{
					StudentID: "student1", StudentName: "Alice Johnson",
					SubmittedAt: NewTimestamp(now),
					Grade:       strPtr("A-"),
					Feedback:    strPtr("Excellent problem-solving skills demonstrated."),
				},
			},
		},
	}
}

func SeedTemplates() []AssignmentTemplate {
	return []AssignmentTemplate{
		{
			ID: "template1", Name: "Weekly Essay Template",
			Title:       "Weekly Essay Submission",
			Description: "Please write a 500-word essay on this week's topic. Ensure you cite at least two sources using APA format.",
		},
		{
			ID: "template2", Name: "Lab Report Template",
			Title:       "Lab Report",
			Description: "Complete the following sections for your lab report:\n1. Introduction\n2. Materials & Methods\n3. Results\n4. Discussion\n5. Conclusion",
		},
	}
}

func SeedQuizzes(now time.Time) []Quiz {
	return []Quiz{
		{
			ID: "quiz1", CourseID: "course3",
			Title:           "Biology Midterm",
			StartTime:       NewTimestamp(now.AddDate(0, 0, -1)),
			EndTime:         NewTimestamp(now.AddDate(0, 0, 2)),
			DurationMinutes: 60,
			Questions: []QuizQuestion{
				{
					Question:           "What is the powerhouse of the cell?",
					Options:            []string{"Mitochondria", "Nucleus", "Ribosome"},
					CorrectAnswerIndex: 0,
				},
			},
		},
	}
}

func SeedAnnouncements(now time.Time) []Announcement {
	return []Announcement{
		{
			ID: "anno1", CourseID: "course1",
			Title:     "Welcome to History!",
			Content:   "Looking forward to a great semester. Please review the syllabus.",
			Author:    "Dr. Aliu Adekunle",
			CreatedAt: NewTimestamp(now.AddDate(0, 0, -2)),
		},
		{
			ID: "anno2", CourseID: "course2",
			Title:     "Calculus Midterm Schedule",
			Content:   "The midterm exam will be held next Friday.",
			Author:    "Dr. Aliu Adekunle",
			CreatedAt: NewTimestamp(now),
		},
	}
}

func SeedVideos() []VideoUpload { return nil }
