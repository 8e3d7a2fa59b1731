package middleware

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/FpProDev/FP_Api.git/internal/models"
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/clerk/clerk-sdk-go/v2/user"
	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
)

var clerkUserClient *user.Client

// InitClerk inicializa el cliente de Clerk. Si no hay clave configurada la
// integración queda deshabilitada y solo funciona la autenticación propia.
func InitClerk() {
	secretKey := os.Getenv("CLERK_SECRET_KEY")
	if secretKey == "" {
		log.Printf("CLERK_SECRET_KEY no configurada, integración con Clerk deshabilitada")
		return
	}

	clerk.SetKey(secretKey)

	config := &clerk.ClientConfig{}
	config.Key = &secretKey
	clerkUserClient = user.NewClient(config)

	log.Printf("Clerk inicializado correctamente")
}

// ClerkAuthMiddleware valida tokens bearer emitidos por Clerk
func ClerkAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if clerkUserClient == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Autenticación con Clerk no disponible"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

		claims, err := jwt.Verify(c.Request.Context(), &jwt.VerifyParams{
			Token: tokenString,
		})
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}

		// Subject contiene el ID del usuario en Clerk
		if claims.Subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}

		c.Set("userId", claims.Subject)
		c.Next()
	}
}

// GetUserFromClerk devuelve la información del usuario autenticado en Clerk
func GetUserFromClerk(c *gin.Context) {
	if clerkUserClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Autenticación con Clerk no disponible"})
		return
	}

	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "ID de usuario no encontrado"})
		return
	}

	clerkUser, err := clerkUserClient.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener información del usuario"})
		return
	}

	var email string
	if len(clerkUser.EmailAddresses) > 0 {
		email = clerkUser.EmailAddresses[0].EmailAddress
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         clerkUser.ID,
			"email":      email,
			"first_name": clerkUser.FirstName,
			"last_name":  clerkUser.LastName,
			"created_at": clerkUser.CreatedAt,
		},
	})
}

// ClerkWebhookHandler procesa los webhooks de usuarios de Clerk,
// verificados con Svix, y mantiene la tabla local de usuarios sincronizada
func ClerkWebhookHandler(c *gin.Context) {
	webhookSecret := os.Getenv("CLERK_WEBHOOK_SECRET")
	if webhookSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret no configurado"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer el cuerpo de la solicitud"})
		return
	}

	wh, err := svix.NewWebhook(webhookSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al inicializar la verificación del webhook"})
		return
	}

	if err := wh.Verify(body, c.Request.Header); err != nil {
		log.Printf("Firma de webhook inválida: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Firma de webhook inválida"})
		return
	}

	var webhookData map[string]interface{}
	if err := json.Unmarshal(body, &webhookData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload JSON inválido"})
		return
	}

	eventType, ok := webhookData["type"].(string)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Falta el tipo de evento"})
		return
	}

	log.Printf("Procesando evento de Clerk: %s", eventType)

	switch eventType {
	case "user.created":
		handleClerkUserCreated(c, webhookData)
	case "user.updated":
		handleClerkUserUpdated(c, webhookData)
	case "user.deleted":
		handleClerkUserDeleted(c, webhookData)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Evento recibido pero no procesado"})
	}
}

// extractClerkUser obtiene id, email principal y nombre del payload del webhook
func extractClerkUser(webhookData map[string]interface{}) (id, email, name string, ok bool) {
	data, okData := webhookData["data"].(map[string]interface{})
	if !okData {
		return "", "", "", false
	}

	id, okID := data["id"].(string)
	if !okID || id == "" {
		return "", "", "", false
	}

	emailAddresses, _ := data["email_addresses"].([]interface{})
	for _, emailAddr := range emailAddresses {
		if emailMap, okMap := emailAddr.(map[string]interface{}); okMap {
			if addr, okAddr := emailMap["email_address"].(string); okAddr && addr != "" {
				email = addr
				break
			}
		}
	}
	if email == "" {
		return "", "", "", false
	}

	firstName, _ := data["first_name"].(string)
	lastName, _ := data["last_name"].(string)
	name = strings.TrimSpace(firstName + " " + lastName)
	if name == "" {
		// Usar la parte local del email como nombre de respaldo
		name = strings.Split(email, "@")[0]
	}

	return id, email, name, true
}

func handleClerkUserCreated(c *gin.Context, webhookData map[string]interface{}) {
	id, email, name, ok := extractClerkUser(webhookData)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload de usuario inválido"})
		return
	}

	newUser := &models.User{
		ID:        id,
		Email:     email,
		Name:      name,
		Password:  "", // Los usuarios de Clerk no tienen contraseña local
		CreatedAt: time.Now(),
	}

	if err := userRepo.CreateUser(newUser); err != nil {
		log.Printf("Error al crear usuario de Clerk %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario creado exitosamente"})
}

func handleClerkUserUpdated(c *gin.Context, webhookData map[string]interface{}) {
	id, email, name, ok := extractClerkUser(webhookData)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload de usuario inválido"})
		return
	}

	updated := &models.User{
		ID:    id,
		Email: email,
		Name:  name,
	}

	if err := userRepo.UpdateUser(updated); err != nil {
		log.Printf("Error al actualizar usuario de Clerk %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario actualizado exitosamente"})
}

func handleClerkUserDeleted(c *gin.Context, webhookData map[string]interface{}) {
	data, okData := webhookData["data"].(map[string]interface{})
	if !okData {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload de usuario inválido"})
		return
	}

	id, okID := data["id"].(string)
	if !okID || id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Falta el ID del usuario"})
		return
	}

	if err := userRepo.DeleteUser(id); err != nil {
		log.Printf("Error al eliminar usuario de Clerk %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado exitosamente"})
}
