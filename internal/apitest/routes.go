package apitest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Canned fixtures. Envelopes deliberately mirror the real server's
// inconsistency: most nest the payload under a named key, auth and
// profile return bare records.

func (s *Server) routes(e *gin.Engine) {
	e.POST("/api/auth/register", func(c *gin.Context) {
		s.reply(c, gin.H{"token": "t1", "user": gin.H{"id": "u1", "name": "A", "email": "a@b.com"}})
	})
	e.POST("/api/auth/login", func(c *gin.Context) {
		s.reply(c, gin.H{"token": "t1", "user": gin.H{"id": "u1", "name": "A", "email": "a@b.com"}})
	})

	api := e.Group("/", s.auth)

	api.GET("/api/auth/me", func(c *gin.Context) {
		s.reply(c, gin.H{"user": gin.H{"id": "u1", "name": "A", "email": "a@b.com"}})
	})

	s.medicationRoutes(api)
	s.appointmentRoutes(api)
	s.prescriptionRoutes(api)
	s.metricRoutes(api)
	s.doctorRoutes(api)
	s.profileRoutes(api)
	s.notificationRoutes(api)
	s.uploadRoutes(api)
	s.exportRoutes(api)
	s.visualizationRoutes(api)
	s.interactionRoutes(api)
}

func (s *Server) medicationRoutes(g *gin.RouterGroup) {
	med := gin.H{"id": "m1", "name": "Lisinopril", "dosage": "10mg", "frequency": "daily"}

	g.GET("/api/medications", func(c *gin.Context) {
		s.reply(c, gin.H{"medications": []gin.H{med}})
	})
	g.POST("/api/medications", func(c *gin.Context) {
		s.reply(c, gin.H{"medication": med})
	})
	g.GET("/api/medications/refill-soon", func(c *gin.Context) {
		s.reply(c, gin.H{"medications": []gin.H{med}})
	})
	g.GET("/api/medications/schedule", func(c *gin.Context) {
		s.reply(c, gin.H{"schedule": []gin.H{{"medicationId": "m1", "name": "Lisinopril", "dosage": "10mg", "time": "08:00", "taken": false}}})
	})
	g.GET("/api/medications/:id", func(c *gin.Context) {
		s.reply(c, gin.H{"medication": med})
	})
	g.PUT("/api/medications/:id", func(c *gin.Context) {
		s.reply(c, gin.H{"medication": med})
	})
	g.DELETE("/api/medications/:id", func(c *gin.Context) {
		s.reply(c, gin.H{"message": "deleted"})
	})
	g.POST("/api/medications/:id/take", func(c *gin.Context) {
		s.reply(c, gin.H{"medication": gin.H{"id": "m1", "name": "Lisinopril", "dosage": "10mg", "frequency": "daily", "lastTakenAt": "2025-06-01T08:00:00Z"}})
	})
}

func (s *Server) appointmentRoutes(g *gin.RouterGroup) {
	appt := gin.H{"id": "a1", "doctorId": "d1", "doctorName": "Dr. Chen", "date": "2025-07-01", "time": "09:30", "status": "scheduled"}

	g.GET("/api/appointments", func(c *gin.Context) {
		s.reply(c, gin.H{"appointments": []gin.H{appt}})
	})
	g.POST("/api/appointments", func(c *gin.Context) {
		s.reply(c, gin.H{"appointment": appt})
	})
	g.GET("/api/appointments/upcoming", func(c *gin.Context) {
		s.reply(c, gin.H{"appointments": []gin.H{appt}})
	})
	g.GET("/api/appointments/past", func(c *gin.Context) {
		s.reply(c, gin.H{"appointments": []gin.H{}})
	})
	g.GET("/api/appointments/available-slots", func(c *gin.Context) {
		s.reply(c, gin.H{"slots": []gin.H{{"date": c.Query("date"), "time": "09:30", "available": true}}})
	})
	g.GET("/api/appointments/:id", func(c *gin.Context) {
		s.reply(c, gin.H{"appointment": appt})
	})
	g.PUT("/api/appointments/:id", func(c *gin.Context) {
		s.reply(c, gin.H{"appointment": appt})
	})
	g.DELETE("/api/appointments/:id", func(c *gin.Context) {
		s.reply(c, gin.H{"message": "deleted"})
	})
	g.PUT("/api/appointments/:id/cancel", func(c *gin.Context) {
		s.reply(c, gin.H{"appointment": gin.H{"id": "a1", "doctorId": "d1", "date": "2025-07-01", "time": "09:30", "status": "cancelled"}})
	})
	g.PUT("/api/appointments/:id/reschedule", func(c *gin.Context) {
		s.reply(c, gin.H{"appointment": gin.H{"id": "a1", "doctorId": "d1", "date": "2025-07-08", "time": "11:00", "status": "scheduled"}})
	})
}

func (s *Server) prescriptionRoutes(g *gin.RouterGroup) {
	rx := gin.H{"id": "p1", "medicationName": "Metformin", "refillsLeft": 2, "status": "active"}

	g.GET("/api/prescriptions", func(c *gin.Context) {
		s.reply(c, gin.H{"prescriptions": []gin.H{rx}})
	})
	g.POST("/api/prescriptions", func(c *gin.Context) {
		s.reply(c, gin.H{"prescription": rx})
	})
	g.GET("/api/prescriptions/active", func(c *gin.Context) {
		s.reply(c, gin.H{"prescriptions": []gin.H{rx}})
	})
	g.GET("/api/prescriptions/refill-needed", func(c *gin.Context) {
		s.reply(c, gin.H{"prescriptions": []gin.H{}})
	})
	g.GET("/api/prescriptions/:id", func(c *gin.Context) {
		s.reply(c, gin.H{"prescription": rx})
	})
	g.POST("/api/prescriptions/:id/refill", func(c *gin.Context) {
		s.reply(c, gin.H{"prescription": gin.H{"id": "p1", "medicationName": "Metformin", "refillsLeft": 1, "status": "active"}})
	})
	g.POST("/api/prescriptions/:id/transfer", func(c *gin.Context) {
		s.reply(c, gin.H{"prescription": gin.H{"id": "p1", "medicationName": "Metformin", "refillsLeft": 2, "pharmacy": "New Pharmacy", "status": "active"}})
	})
}

func (s *Server) metricRoutes(g *gin.RouterGroup) {
	metric := gin.H{"id": "hm1", "type": "heart_rate", "value": 72.0, "unit": "bpm"}

	g.GET("/api/health-metrics", func(c *gin.Context) {
		s.reply(c, gin.H{"metrics": []gin.H{metric}})
	})
	g.POST("/api/health-metrics", func(c *gin.Context) {
		s.reply(c, gin.H{"metric": metric})
	})
	g.GET("/api/health-metrics/summary", func(c *gin.Context) {
		s.reply(c, gin.H{"summary": gin.H{"heart_rate": gin.H{"latest": 72, "unit": "bpm"}}})
	})
	g.GET("/api/health-metrics/trends", func(c *gin.Context) {
		s.reply(c, gin.H{"heart_rate": []gin.H{{"date": "2025-06-01", "value": 72}}})
	})
	g.GET("/api/health-metrics/bmi", func(c *gin.Context) {
		s.reply(c, gin.H{"bmi": 22.9, "category": "normal", "height": 175.0, "weight": 70.0})
	})
	g.GET("/api/health-metrics/:id", func(c *gin.Context) {
		s.reply(c, gin.H{"metric": metric})
	})
}

func (s *Server) doctorRoutes(g *gin.RouterGroup) {
	doc := gin.H{"id": "d1", "name": "Dr. Chen", "specialty": "Cardiology", "rating": 4.8}

	g.GET("/api/doctors", func(c *gin.Context) {
		s.reply(c, gin.H{"doctors": []gin.H{doc}})
	})
	g.GET("/api/doctors/specialties", func(c *gin.Context) {
		s.reply(c, gin.H{"specialties": []string{"Cardiology", "Dermatology"}})
	})
	g.GET("/api/doctors/top-rated", func(c *gin.Context) {
		s.reply(c, gin.H{"doctors": []gin.H{doc}})
	})
	g.GET("/api/doctors/:id", func(c *gin.Context) {
		s.reply(c, gin.H{"doctor": doc})
	})
	g.GET("/api/doctors/:id/availability", func(c *gin.Context) {
		s.reply(c, gin.H{"slots": []gin.H{{"date": c.Query("date"), "time": "10:00", "available": true}}})
	})
	g.POST("/api/doctors/:id/reviews", func(c *gin.Context) {
		s.reply(c, gin.H{"review": gin.H{"id": "r1", "doctorId": c.Param("id"), "rating": 5}})
	})
}

func (s *Server) profileRoutes(g *gin.RouterGroup) {
	profile := gin.H{"id": "u1", "name": "A", "email": "a@b.com", "bloodType": "O+"}

	g.GET("/api/profile", func(c *gin.Context) {
		s.reply(c, profile)
	})
	g.PUT("/api/profile", func(c *gin.Context) {
		s.reply(c, profile)
	})
	g.PUT("/api/profile/preferences", func(c *gin.Context) {
		s.reply(c, gin.H{"preferences": gin.H{"emailNotifications": true, "smsNotifications": false}})
	})
	g.PUT("/api/profile/security", func(c *gin.Context) {
		s.reply(c, gin.H{"message": "password updated"})
	})
	g.POST("/api/profile/providers", func(c *gin.Context) {
		s.reply(c, gin.H{"provider": gin.H{"id": "pr1", "name": "Dr. Chen", "specialty": "Cardiology"}})
	})
	g.DELETE("/api/profile/providers/:id", func(c *gin.Context) {
		s.reply(c, gin.H{"message": "removed"})
	})
	g.GET("/api/profile/health-summary", func(c *gin.Context) {
		s.reply(c, gin.H{"summary": gin.H{"medications": 3, "appointments": 1}})
	})
	g.DELETE("/api/profile/account", func(c *gin.Context) {
		s.reply(c, gin.H{"message": "account deleted"})
	})
}

func (s *Server) notificationRoutes(g *gin.RouterGroup) {
	note := gin.H{"id": "n1", "type": "medication", "title": "Time for Lisinopril", "read": false}

	g.GET("/api/notifications", func(c *gin.Context) {
		s.reply(c, gin.H{"notifications": []gin.H{note}})
	})
	g.PUT("/api/notifications/read-all", func(c *gin.Context) {
		s.reply(c, gin.H{"message": "all read"})
	})
	g.POST("/api/notifications/medication-reminder", func(c *gin.Context) {
		s.reply(c, gin.H{"notification": note})
	})
	g.POST("/api/notifications/appointment-reminder", func(c *gin.Context) {
		s.reply(c, gin.H{"notification": gin.H{"id": "n2", "type": "appointment", "title": "Upcoming appointment", "read": false}})
	})
	g.POST("/api/notifications/test", func(c *gin.Context) {
		s.reply(c, gin.H{"message": "test sent"})
	})
	g.GET("/api/notifications/:id", func(c *gin.Context) {
		s.reply(c, gin.H{"notification": note})
	})
	g.PUT("/api/notifications/:id/read", func(c *gin.Context) {
		s.reply(c, gin.H{"notification": gin.H{"id": "n1", "type": "medication", "title": "Time for Lisinopril", "read": true}})
	})
	g.DELETE("/api/notifications/:id", func(c *gin.Context) {
		s.reply(c, gin.H{"message": "deleted"})
	})
}

func (s *Server) uploadRoutes(g *gin.RouterGroup) {
	g.GET("/api/upload/files", func(c *gin.Context) {
		s.reply(c, gin.H{"files": []gin.H{{
			"id": "r1", "title": "Blood work",
			"files": []gin.H{{"id": "f1", "name": "results.pdf", "mimeType": "application/pdf"}},
		}}})
	})
	g.POST("/api/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "file is required"})
			return
		}
		s.reply(c, gin.H{"report": gin.H{
			"id": "r2", "title": c.PostForm("title"),
			"files": []gin.H{{"id": "f2", "name": file.Filename}},
		}})
	})
	g.GET("/api/upload/files/:reportId/:fileId/download", s.binary)
	g.GET("/api/upload/files/:reportId/:fileId/view", s.binary)
	g.DELETE("/api/upload/files/:reportId/:fileId", func(c *gin.Context) {
		s.reply(c, gin.H{"message": "deleted"})
	})
}

func (s *Server) exportRoutes(g *gin.RouterGroup) {
	g.POST("/api/export", s.binary)
	g.GET("/api/export/history", func(c *gin.Context) {
		s.reply(c, gin.H{"history": []gin.H{{"id": "e1", "format": "pdf", "createdAt": "2025-05-01T10:00:00Z"}}})
	})
}

func (s *Server) visualizationRoutes(g *gin.RouterGroup) {
	g.GET("/api/visualization/health-trends", func(c *gin.Context) {
		s.reply(c, gin.H{"labels": []string{"Jan", "Feb"}, "series": []float64{70, 72}})
	})
	g.GET("/api/visualization/medication-adherence", func(c *gin.Context) {
		s.reply(c, gin.H{"adherence": 0.93})
	})
	g.GET("/api/visualization/appointment-stats", func(c *gin.Context) {
		s.reply(c, gin.H{"completed": 4, "cancelled": 1})
	})
	g.GET("/api/visualization/dashboard", func(c *gin.Context) {
		s.reply(c, gin.H{"widgets": []string{"metrics", "medications"}})
	})
}

func (s *Server) interactionRoutes(g *gin.RouterGroup) {
	finding := gin.H{"id": "i1", "medications": []string{"warfarin", "aspirin"}, "severity": "major"}

	g.POST("/api/medication-interactions/check", func(c *gin.Context) {
		s.reply(c, gin.H{"interactions": []gin.H{finding}})
	})
	g.POST("/api/medication-interactions/check-prescriptions", func(c *gin.Context) {
		s.reply(c, gin.H{"interactions": []gin.H{}})
	})
	g.POST("/api/medication-interactions/check-mixed", func(c *gin.Context) {
		s.reply(c, gin.H{"interactions": []gin.H{finding}})
	})
	g.GET("/api/medication-interactions/common", func(c *gin.Context) {
		s.reply(c, gin.H{"interactions": []gin.H{finding}})
	})
	g.GET("/api/medication-interactions/:id", func(c *gin.Context) {
		s.reply(c, gin.H{"interaction": finding})
	})
	g.POST("/api/medication-interactions/:id/medications", func(c *gin.Context) {
		s.reply(c, gin.H{"interaction": finding})
	})
	g.DELETE("/api/medication-interactions/:id/medications/:medicationId", func(c *gin.Context) {
		s.reply(c, gin.H{"interaction": gin.H{"id": "i1", "medications": []string{"warfarin"}, "severity": "minor"}})
	})
}
