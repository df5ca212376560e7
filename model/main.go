package model

import (
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"files-manager/common"
)

// InitDB opens the metadata database and migrates the schema. MySQL is used
// when dsn is set, SQLite otherwise. The returned handle is passed into the
// stores explicitly; there is no package-level connection.
func InitDB(dsn string, sqlitePath string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	if dsn != "" {
		common.SysLog("Using MySQL database")
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			PrepareStmt: true,
			Logger:      logger.Default.LogMode(logger.Silent),
		})
	} else {
		common.SysLog("SQL_DSN not set, using SQLite as database: " + sqlitePath)
		db, err = gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{
			PrepareStmt: true,
			Logger:      logger.Default.LogMode(logger.Silent),
		})
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&User{}, &File{}); err != nil {
		return nil, err
	}

	common.SysLog("Database initialized successfully")
	return db, nil
}

func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	common.SysLog("Closing database connection")
	return sqlDB.Close()
}

// PingDB reports database liveness for the status endpoint.
func PingDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
