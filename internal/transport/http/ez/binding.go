package ez

import (
	"github.com/gin-gonic/gin/binding"

	"eco-waste-api/internal/domain"
)

// gin 绑定与存储层共用一套校验规则
func init() { binding.Validator = domain.GinValidator{} }
