package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/booklibrary/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用版本化的迁移脚本，不要依赖AutoMigrate
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&CategoryModel{},
		&BookModel{},
		&ReviewModel{},
	)
}

// AuthorModel GORM作者模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/author/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type AuthorModel struct {
	ID          uint       `gorm:"primaryKey"`
	FirstName   string     `gorm:"index:idx_author_name;size:100;not null;comment:名"`
	LastName    string     `gorm:"index:idx_author_name;size:100;not null;comment:姓"`
	Biography   string     `gorm:"size:500;comment:简介"`
	DateOfBirth *time.Time `gorm:"comment:出生日期"`
	Nationality string     `gorm:"size:100;comment:国籍"`
	CreatedAt   time.Time  `gorm:"comment:创建时间"`
	UpdatedAt   time.Time  `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"uniqueIndex;size:100;not null;comment:分类名"`
	Description string    `gorm:"size:500;comment:描述"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. AuthorID外键引用authors表;作者存在性由外键约束兜底
// 3. 与分类是多对多关系,经book_categories关联表(随图书删除级联清理)
// 4. 书评随图书删除级联清理
type BookModel struct {
	ID            uint            `gorm:"primaryKey"`
	Title         string          `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Description   string          `gorm:"size:1000;comment:图书描述"`
	PublishedDate time.Time       `gorm:"index;comment:出版日期"`
	ISBN          string          `gorm:"size:50;comment:ISBN号"`
	Price         int64           `gorm:"not null;comment:价格(分)"`
	PageCount     int             `gorm:"comment:页数"`
	Publisher     string          `gorm:"size:100;comment:出版社"`
	Language      string          `gorm:"size:50;comment:语言"`
	CoverImageURL string          `gorm:"size:500;comment:封面图片URL"`
	IsAvailable   bool            `gorm:"default:true;comment:是否可借阅"`
	AuthorID      uint            `gorm:"index;not null;comment:作者ID"`
	Author        *AuthorModel    `gorm:"foreignKey:AuthorID"`
	Categories    []CategoryModel `gorm:"many2many:book_categories;joinForeignKey:BookID;joinReferences:CategoryID"`
	Reviews       []ReviewModel   `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time       `gorm:"comment:创建时间"`
	UpdatedAt     time.Time       `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// ReviewModel GORM书评模型
type ReviewModel struct {
	ID            uint      `gorm:"primaryKey"`
	Rating        int       `gorm:"not null;comment:评分(1-5)"`
	Comment       string    `gorm:"size:1000;comment:评论"`
	ReviewDate    time.Time `gorm:"comment:评论日期"`
	ReviewerName  string    `gorm:"size:100;comment:评论人姓名"`
	ReviewerEmail string    `gorm:"size:100;comment:评论人邮箱"`
	BookID        uint      `gorm:"index;not null;comment:图书ID"`
	CreatedAt     time.Time `gorm:"comment:创建时间"`
	UpdatedAt     time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}
