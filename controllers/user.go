package controllers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/zeecare/hospital-backend/db"
	"github.com/zeecare/hospital-backend/middleware"
	"github.com/zeecare/hospital-backend/models"
	"github.com/zeecare/hospital-backend/redis"
	"github.com/zeecare/hospital-backend/utils"
)

const doctorsCacheKey = "doctors:all"

type registerInput struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	AadharNumber     string `json:"aadharNumber"`
	DOB              string `json:"dob"`
	Gender           string `json:"gender"`
	Password         string `json:"password"`
	Role             string `json:"role"`
	DoctorDepartment string `json:"doctorDepartment"`
}

func (in *registerInput) toUser() models.User {
	return models.User{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            in.Phone,
		AadharNumber:     in.AadharNumber,
		DOB:              in.DOB,
		Gender:           in.Gender,
		Role:             in.Role,
		DoctorDepartment: in.DoctorDepartment,
	}
}

// createUser hashes the password and persists the user after the shared
// duplicate-email check. Email is unique across every role.
func createUser(user *models.User, password string) error {
	var existing models.User
	if db.DB.Where("email = ?", user.Email).First(&existing).RowsAffected > 0 {
		return utils.ValidationError(existing.Role + " With This Email Already Exists!")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Internal(err)
	}
	user.Password = string(hashed)

	if err := db.DB.Create(user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return utils.Internal(err)
	}
	return nil
}

// PatientRegister handles self-service patient signup
func PatientRegister(c *fiber.Ctx) error {
	input := new(registerInput)
	if err := c.BodyParser(input); err != nil {
		return utils.ValidationError("Cannot parse JSON")
	}

	user := input.toUser()
	user.Role = models.RolePatient
	if msg := user.Validate(input.Password); msg != "" {
		return utils.ValidationError(msg)
	}

	if err := createUser(&user, input.Password); err != nil {
		return err
	}

	return utils.GenerateToken(&user, "User Registered!", fiber.StatusOK, c)
}

// Login authenticates any role and issues the token on its scoped cookie
func Login(c *fiber.Ctx) error {
	type loginInput struct {
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		Role            string `json:"role"`
	}

	input := new(loginInput)
	if err := c.BodyParser(input); err != nil {
		return utils.ValidationError("Cannot parse JSON")
	}

	if input.Email == "" || input.Password == "" || input.ConfirmPassword == "" || input.Role == "" {
		return utils.ValidationError("Please Provide All Details!")
	}
	if input.Password != input.ConfirmPassword {
		return utils.ValidationError("Password And Confirm Password Do Not Match!")
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return utils.ValidationError("Invalid Email Or Password!")
	}
	if err := user.ComparePassword(input.Password); err != nil {
		return utils.ValidationError("Invalid Email Or Password!")
	}
	if input.Role != user.Role {
		return utils.ValidationError("User With This Role Not Found!")
	}

	return utils.GenerateToken(&user, "User Logged In Successfully!", fiber.StatusOK, c)
}

// AddNewAdmin registers an admin account; admin-gated, no cookie issued
func AddNewAdmin(c *fiber.Ctx) error {
	input := new(registerInput)
	if err := c.BodyParser(input); err != nil {
		return utils.ValidationError("Cannot parse JSON")
	}

	admin := input.toUser()
	admin.Role = models.RoleAdmin
	if msg := admin.Validate(input.Password); msg != "" {
		return utils.ValidationError(msg)
	}

	if err := createUser(&admin, input.Password); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "New Admin Registered!",
	})
}

// AddNewDoctor registers a doctor with a mandatory avatar upload
func AddNewDoctor(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("docAvatar")
	if err != nil {
		return utils.ValidationError("Doctor Avatar Is Required!")
	}

	switch fileHeader.Header.Get("Content-Type") {
	case "image/png", "image/jpeg", "image/webp":
	default:
		return utils.ValidationError("File Format Not Supported!")
	}

	doctor := models.User{
		FirstName:        c.FormValue("firstName"),
		LastName:         c.FormValue("lastName"),
		Email:            c.FormValue("email"),
		Phone:            c.FormValue("phone"),
		AadharNumber:     c.FormValue("aadharNumber"),
		DOB:              c.FormValue("dob"),
		Gender:           c.FormValue("gender"),
		Role:             models.RoleDoctor,
		DoctorDepartment: c.FormValue("doctorDepartment"),
	}
	password := c.FormValue("password")
	if doctor.DoctorDepartment == "" {
		return utils.ValidationError("Please Fill Full Form!")
	}
	if msg := doctor.Validate(password); msg != "" {
		return utils.ValidationError(msg)
	}

	avatarFile, err := fileHeader.Open()
	if err != nil {
		return utils.Internal(err)
	}
	defer avatarFile.Close()

	upload, err := utils.UploadAvatar(avatarFile, "doctors")
	if err != nil {
		log.Printf("Cloudinary upload failed: %v", err)
		return utils.Internal(err)
	}
	doctor.DocAvatar = models.DocAvatar{
		PublicID: upload.PublicID,
		URL:      upload.SecureURL,
	}

	if err := createUser(&doctor, password); err != nil {
		return err
	}

	invalidateDoctorsCache()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "New Doctor Registered!",
		"doctor":  doctor,
	})
}

// GetAllDoctors lists every doctor, served from the Redis cache when warm
func GetAllDoctors(c *fiber.Ctx) error {
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, doctorsCacheKey).Result(); err == nil {
			var doctors []models.User
			if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
				return c.JSON(fiber.Map{
					"success": true,
					"doctors": doctors,
				})
			}
		}
	}

	var doctors []models.User
	if err := db.DB.Where("role = ?", models.RoleDoctor).Find(&doctors).Error; err != nil {
		return utils.Internal(err)
	}

	if redis.Client != nil {
		if payload, err := json.Marshal(doctors); err == nil {
			redis.Client.Set(redis.Ctx, doctorsCacheKey, payload, 10*time.Minute)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"doctors": doctors,
	})
}

func invalidateDoctorsCache() {
	if redis.Client != nil {
		redis.Client.Del(redis.Ctx, doctorsCacheKey)
	}
}

// GetUserDetails returns the identity the auth gate resolved
func GetUserDetails(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthenticated("Not Authenticated!")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// LogoutAdmin expires the adminToken cookie
func LogoutAdmin(c *fiber.Ctx) error {
	utils.ClearCookie(c, utils.AdminCookie)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Admin Logged Out Successfully!",
	})
}

// LogoutPatient expires the patientToken cookie
func LogoutPatient(c *fiber.Ctx) error {
	utils.ClearCookie(c, utils.PatientCookie)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Patient Logged Out Successfully!",
	})
}
