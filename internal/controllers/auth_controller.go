package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nagorik_desk/internal/config"
	"nagorik_desk/internal/middleware"
	"nagorik_desk/internal/models"
)

// VerifyNid checks a national ID against the pre-loaded registry. It succeeds
// only when the ID exists, the supplied date of birth matches (date-only,
// UTC), and no user has registered with that ID yet.
func VerifyNid(c *gin.Context) {
	nid := c.Query("nid")
	dob := c.Query("dob")
	if nid == "" || dob == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "NID and Date of Birth are required"})
		return
	}

	providedDob, err := time.ParseInLocation("2006-01-02", dob, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date of Birth must be in YYYY-MM-DD format"})
		return
	}

	var record models.NidVerification
	if err := config.DB.Where("nid = ?", nid).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "NID not found in database"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error verifying NID"})
		}
		return
	}

	recordDob := record.Dob.UTC().Truncate(24 * time.Hour)
	if !providedDob.Equal(recordDob) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date of Birth does not match our records"})
		return
	}

	var existing models.User
	if err := config.DB.Where("nid = ?", nid).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "This NID is already registered"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error verifying NID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name": record.Name,
		"dob":  recordDob.Format("2006-01-02"),
	})
}

// CompleteRegistration creates the user row after NID verification.
func CompleteRegistration(c *gin.Context) {
	var body struct {
		Nid      string `json:"nid"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	var missing []string
	if body.Nid == "" {
		missing = append(missing, "NID")
	}
	if body.Phone == "" {
		missing = append(missing, "Phone")
	}
	if body.Email == "" {
		missing = append(missing, "Email")
	}
	if body.Password == "" {
		missing = append(missing, "Password")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields: " + strings.Join(missing, ", ")})
		return
	}

	var record models.NidVerification
	if err := config.DB.Where("nid = ?", body.Nid).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid NID"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		}
		return
	}

	var existing models.User
	err := config.DB.Where("phone = ? OR email = ?", body.Phone, body.Email).First(&existing).Error
	if err == nil {
		message := "Email already registered"
		if existing.Phone == body.Phone {
			message = "Phone number already registered"
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": message})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not hash password"})
		return
	}

	user := models.User{
		Nid:          body.Nid,
		Name:         record.Name,
		Phone:        body.Phone,
		Email:        body.Email,
		Password:     string(hash),
		IsRegistered: true,
		Role:         models.RoleEndUser,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		// Race between the pre-check and the insert; the unique indexes win.
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Phone, email or NID already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// LoginUser checks credentials and mints a bearer token.
func LoginUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found or invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"ID":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
	})
}
