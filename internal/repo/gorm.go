package repo

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"eco-waste-api/internal/domain"
	"eco-waste-api/internal/feature/facility"
	"eco-waste-api/internal/feature/payment"
	"eco-waste-api/internal/feature/user"
)

// Migrate 建表（使用 feature 下的模型）
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&user.UserModel{}, &payment.PaymentModel{}, &facility.FacilityModel{})
}

// DBNow 截断到微秒：时间列按 precision:6 建表，读回与写入一致
func DBNow() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }

// NewGorm 构造数据库后端的仓储；id 由自增主键分配
func NewGorm(db *gorm.DB, now func() time.Time) domain.Repositories {
	if now == nil {
		now = DBNow
	}
	return domain.Repositories{
		Users:      NewUserRepo(db),
		Payments:   &PaymentRepo{db: db, now: now},
		Facilities: &FacilityRepo{db: db, now: now},
	}
}

func isDupKey(err error) bool {
	// 不依赖 gorm.ErrDuplicatedKey（需开启 TranslateError），按驱动报错文本判断
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}

// 用 ! 作转义符：反斜杠在 MySQL 与 Postgres 字面量里的含义不同
var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

// likeFold 与内存实现的 ContainsFold 语义一致：小写 + 子串
func likeFold(db *gorm.DB, needle string, cols ...string) *gorm.DB {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" || len(cols) == 0 {
		return db
	}
	pattern := "%" + likeEscaper.Replace(needle) + "%"
	conds := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for _, c := range cols {
		conds = append(conds, "LOWER("+c+") LIKE ? ESCAPE '!'")
		args = append(args, pattern)
	}
	return db.Where("("+strings.Join(conds, " OR ")+")", args...)
}
