package bot

// AllowList is the fixed set of Telegram identities granted admin access.
// It is the single authorization gate for the admin command and every
// admin_* callback token.
type AllowList map[int64]struct{}

func NewAllowList(ids []int64) AllowList {
	l := make(AllowList, len(ids))
	for _, id := range ids {
		l[id] = struct{}{}
	}
	return l
}

func (l AllowList) Allows(id int64) bool {
	_, ok := l[id]
	return ok
}
