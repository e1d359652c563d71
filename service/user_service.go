package service

import (
	"errors"
	"fmt"

	"dianping/internal/auth"
	"dianping/internal/sms"
	"dianping/internal/validator"
	"dianping/model"

	"github.com/go-redis/redis/v8"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrInvalidPhone = errors.New("手机号格式错误")
	ErrCodeMismatch = errors.New("验证码错误")
)

// UserDirectory 持久层抽象，测试里用内存实现替换
type UserDirectory interface {
	FindByPhone(phone string) (*model.User, error)
	CreateUser(user *model.User) error
}

// UserService bundles the user directory, the Redis session store and the
// SMS sink behind the send-code / login operations.
type UserService struct {
	dao     UserDirectory
	Session *auth.SessionManager
	sms     sms.Notifier

	// newCode 可在测试里替换成固定值
	newCode func() string
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(dao UserDirectory, rdb *redis.Client, notifier sms.Notifier) *UserService {
	return &UserService{
		dao:     dao,
		Session: auth.NewSessionManager(rdb),
		sms:     notifier,
		newCode: func() string { return auth.RandomNumericCode(6) },
	}
}

// SendCode 发送验证码：校验手机号 -> 生成 6 位验证码 -> 存 Redis（2 分钟）-> 发短信。
// 重复请求直接覆盖旧验证码，没有重发间隔限制。
func (s *UserService) SendCode(phone string) error {
	if !validator.IsPhone(phone) {
		return ErrInvalidPhone
	}
	code := s.newCode()
	if err := s.Session.SaveCode(phone, code); err != nil {
		return fmt.Errorf("save code: %w", err)
	}
	s.sms.Notify(phone, code)
	return nil
}

// Login 验证码登录，成功返回登录令牌。
// 验证码缺失、过期、不匹配统一返回 ErrCodeMismatch，不暴露验证码是否发过。
func (s *UserService) Login(phone, code string) (string, error) {
	if !validator.IsPhone(phone) {
		return "", ErrInvalidPhone
	}

	cached, err := s.Session.GetCode(phone)
	if errors.Is(err, auth.ErrNotFound) {
		return "", ErrCodeMismatch
	}
	if err != nil {
		return "", fmt.Errorf("read code: %w", err)
	}
	if cached != code {
		return "", ErrCodeMismatch
	}

	// 首次登录即注册
	user, err := s.dao.FindByPhone(phone)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		if user, err = s.createUserWithPhone(phone); err != nil {
			return "", fmt.Errorf("create user: %w", err)
		}
	}

	// 每次登录都发新令牌，旧令牌各自等到期，不做撤销
	token := auth.NewToken()
	if err := s.Session.SaveSession(token, user.Profile().Fields()); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	// 验证码不主动删除，到期自然失效
	return token, nil
}

// createUserWithPhone 用默认昵称建新用户。并发首登可能撞手机号唯一索引，
// 撞上说明别的请求已经建好了，回查一次拿现成的。
func (s *UserService) createUserWithPhone(phone string) (*model.User, error) {
	user := &model.User{
		Phone:    phone,
		Nickname: "user_" + auth.RandomString(10),
	}
	err := s.dao.CreateUser(user)
	if err == nil {
		return user, nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.Is(err, gorm.ErrDuplicatedKey) || (errors.As(err, &mysqlErr) && mysqlErr.Number == 1062) {
		existing, ferr := s.dao.FindByPhone(phone)
		if ferr != nil {
			return nil, ferr
		}
		if existing != nil {
			return existing, nil
		}
	}
	return nil, err
}
