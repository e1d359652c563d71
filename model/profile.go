package model

import (
	"errors"
	"strconv"
)

// UserProfile 用户公开信息，登录后以 hash 形式存入 Redis。
// 用 hash 而不是整块 JSON，后续改昵称、换头像只需要写单个字段。
type UserProfile struct {
	ID       uint64 `json:"id"`
	Nickname string `json:"nickname"`
	Icon     string `json:"icon"`
}

// Profile projects the public fields of a user, leaving phone and
// timestamps out of the session record.
func (u *User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Nickname: u.Nickname, Icon: u.Icon}
}

// Fields flattens the profile into string fields for hash storage.
// 数值统一转成字符串，空字段不写入
func (p UserProfile) Fields() map[string]string {
	fields := map[string]string{
		"id": strconv.FormatUint(p.ID, 10),
	}
	if p.Nickname != "" {
		fields["nickname"] = p.Nickname
	}
	if p.Icon != "" {
		fields["icon"] = p.Icon
	}
	return fields
}

var ErrBadProfile = errors.New("malformed session record")

// ProfileFromFields is the inverse of Fields. A record without a parseable
// id is treated as malformed.
func ProfileFromFields(fields map[string]string) (UserProfile, error) {
	raw, ok := fields["id"]
	if !ok {
		return UserProfile{}, ErrBadProfile
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return UserProfile{}, ErrBadProfile
	}
	return UserProfile{
		ID:       id,
		Nickname: fields["nickname"],
		Icon:     fields["icon"],
	}, nil
}
