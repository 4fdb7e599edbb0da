package Controllers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"TaskBoard/Models"
	"TaskBoard/Tasks"
	"TaskBoard/middleware"
)

// User facing messages.
const (
	msgInvalidFileType = "يرجى اختيار ملف Excel صحيح (.xlsx أو .xls)"
	msgReadFailure     = "حدث خطأ في قراءة الملف. يرجى التأكد من صحة الملف."
	msgProcessFailure  = "حدث خطأ في معالجة البيانات: "
	msgNoData          = "يرجى تحميل ملف البيانات أولاً"
	msgNoResults       = "لا توجد نتائج تطابق معايير البحث"
	msgUploaded        = "تم تحميل الملف بنجاح!"
	msgStoreFailure    = "حدث خطأ في حفظ البيانات"
	msgMissingFile     = "لم يتم اختيار ملف"
	msgTaskNotFound    = "المهمة غير موجودة"
	msgCleared         = "تم مسح البيانات"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse is returned by endpoints without a payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func errorJSON(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(ErrorResponse{Success: false, Error: message})
}

// loadSnapshot fetches the snapshot of the caller's session. found is false
// when nothing was uploaded yet.
func loadSnapshot(ctx *fiber.Ctx, store Models.SnapshotStore) (snapshot Models.Snapshot, dataset Tasks.Dataset, found bool, err error) {
	snapshot, err = store.Load(requestContext(ctx), middleware.SessionKey(ctx))
	if errors.Is(err, Models.ErrNoSnapshot) {
		return snapshot, dataset, false, nil
	}
	if err != nil {
		log.Printf("Error loading snapshot: %v\n", err)
		return snapshot, dataset, false, err
	}

	dataset, err = snapshot.Dataset()
	if err != nil {
		log.Printf("Error decoding snapshot %d: %v\n", snapshot.ID, err)
		return snapshot, dataset, false, err
	}
	return snapshot, dataset, true, nil
}

func requestContext(ctx *fiber.Ctx) context.Context {
	if userContext := ctx.UserContext(); userContext != nil {
		return userContext
	}
	return context.Background()
}
